package portal

import (
	"flounder-swim/internal/clock"
	"flounder-swim/internal/collection"
	"flounder-swim/internal/models"
	"flounder-swim/internal/util"
)

var heatNameFields = setter[models.HeatName]{
	"name":  func(h *models.HeatName, v string) { h.Name = v },
	"stage": func(h *models.HeatName, v string) { h.Stage = v },
	"order": func(h *models.HeatName, v string) { h.Order = util.Number(v) },
}

var ageCategoryFields = setter[models.AgeCategory]{
	"groupName": func(a *models.AgeCategory, v string) { a.GroupName = v },
	"minAge":    func(a *models.AgeCategory, v string) { a.MinAge = util.Number(v) },
	"maxAge":    func(a *models.AgeCategory, v string) { a.MaxAge = util.Number(v) },
}

// Regulations holds the heat names and the age categories. Each list has
// its own edit session.
type Regulations struct {
	clock clock.Clock
	heats *editable[models.HeatName]
	ages  *editable[models.AgeCategory]
	order *collection.Sorter[models.HeatName]
}

func newRegulations(opts Options) *Regulations {
	seed := opts.Seed.Clone()
	order := collection.NewSorter(opts.Locale,
		collection.NumberField("order", func(h models.HeatName) int { return h.Order }),
	)
	order.SortBy("order", collection.Asc)
	return &Regulations{
		clock: opts.Clock,
		heats: newEditable(string(RegulationsPage), seed.HeatNames, heatNameFields, opts),
		ages:  newEditable(string(RegulationsPage), seed.AgeCategories, ageCategoryFields, opts),
		order: order,
	}
}

// AddHeat creates a heat name placed after the existing ones.
func (r *Regulations) AddHeat() {
	r.heats.add(models.HeatName{
		ID:    clock.NewID(r.clock),
		Order: r.heats.store.Len() + 1,
	})
}

func (r *Regulations) EditHeat(id string) { r.heats.begin(id) }

func (r *Regulations) SetHeatField(name, value string) { r.heats.set(name, value) }

func (r *Regulations) SaveHeat() { r.heats.save() }

func (r *Regulations) SubmitHeat(id string, fields map[string]string) { r.heats.submit(id, fields) }

func (r *Regulations) CancelHeat() { r.heats.cancel() }

func (r *Regulations) DeleteHeat(id string) { r.heats.remove(id) }

func (r *Regulations) AddAge() {
	r.ages.add(models.AgeCategory{ID: clock.NewID(r.clock)})
}

func (r *Regulations) EditAge(id string) { r.ages.begin(id) }

func (r *Regulations) SetAgeField(name, value string) { r.ages.set(name, value) }

func (r *Regulations) SaveAge() { r.ages.save() }

func (r *Regulations) SubmitAge(id string, fields map[string]string) { r.ages.submit(id, fields) }

func (r *Regulations) CancelAge() { r.ages.cancel() }

func (r *Regulations) DeleteAge(id string) { r.ages.remove(id) }

type RegulationsView struct {
	Heats []Row[models.HeatName]
	Ages  []Row[models.AgeCategory]
}

func (r *Regulations) View() RegulationsView {
	return RegulationsView{
		Heats: r.heats.rows(r.order.Apply(r.heats.store.All())),
		Ages:  r.ages.rows(r.ages.store.All()),
	}
}
