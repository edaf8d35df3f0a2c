package portal

import (
	"flounder-swim/internal/collection"
	"flounder-swim/internal/models"
)

// Awards is read-only; the only state is the selected discipline tab.
type Awards struct {
	results []models.DistanceResults
	filter  *collection.Filter[models.DistanceResults]
}

func newAwards(opts Options) *Awards {
	return &Awards{
		results: opts.Seed.Clone().Awards,
		filter: collection.NewFilter[models.DistanceResults]().
			Equal("discipline", func(r models.DistanceResults) string { return r.Discipline }),
	}
}

// SetDiscipline selects a tab; collection.AllValue shows every distance.
func (a *Awards) SetDiscipline(d string) { a.filter.Set("discipline", d) }

type AgeGroup struct {
	AgeCategory string
	Gold        []models.Winner
	Silver      []models.Winner
	Bronze      []models.Winner
}

type AwardDistance struct {
	Distance   string
	Discipline string
	Groups     []AgeGroup
}

type AwardsView struct {
	Disciplines []string
	Selected    string
	Distances   []AwardDistance
}

func (a *Awards) View() AwardsView {
	v := AwardsView{
		Disciplines: a.filter.Options(a.results, "discipline"),
		Selected:    a.filter.Value("discipline"),
	}
	for _, r := range a.filter.Apply(a.results) {
		v.Distances = append(v.Distances, AwardDistance{
			Distance:   r.Distance,
			Discipline: r.Discipline,
			Groups:     GroupByAgeCategory(r.Winners),
		})
	}
	return v
}

// GroupByAgeCategory splits winners by age category, in the order the
// categories first appear, and by place inside each category.
func GroupByAgeCategory(winners []models.Winner) []AgeGroup {
	var groups []AgeGroup
	index := map[string]int{}
	for _, w := range winners {
		i, ok := index[w.AgeCategory]
		if !ok {
			i = len(groups)
			index[w.AgeCategory] = i
			groups = append(groups, AgeGroup{AgeCategory: w.AgeCategory})
		}
		switch w.Place {
		case 1:
			groups[i].Gold = append(groups[i].Gold, w)
		case 2:
			groups[i].Silver = append(groups[i].Silver, w)
		case 3:
			groups[i].Bronze = append(groups[i].Bronze, w)
		}
	}
	return groups
}
