package collection_test

import (
	"reflect"
	"testing"

	"flounder-swim/internal/collection"
	"flounder-swim/internal/models"
)

func seedParticipants() []models.Participant {
	return []models.Participant{
		{ID: "1", Discipline: "Вольный стиль", FullName: "Иванов Алексей Петрович", Team: "Дельфины", Age: 24, Time: "00:24.5", Distance: "50м", Heat: "Финал А", Lane: 4},
		{ID: "2", Discipline: "Вольный стиль", FullName: "Петрова Мария Сергеевна", Team: "Волны", Age: 22, Time: "00:26.8", Distance: "50м", Heat: "Финал А", Lane: 5},
		{ID: "3", Discipline: "Вольный стиль", FullName: "Сидоров Константин Иванович", Team: "Дельфины", Age: 26, Time: "00:25.2", Distance: "50м", Heat: "Финал А", Lane: 3},
		{ID: "4", Discipline: "Баттерфляй", FullName: "Козлова Елена Александровна", Team: "Акулы", Age: 23, Time: "00:27.1", Distance: "100м", Heat: "Финал Б", Lane: 2},
	}
}

func ids(recs []models.Participant) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestStoreUpdateKeepsPositionAndCount(t *testing.T) {
	for _, target := range seedParticipants() {
		store := collection.NewStore(seedParticipants())
		changed := target
		changed.FullName = "Другое Имя"
		changed.Age = 99

		store.Update(target.ID, changed)

		all := store.All()
		if len(all) != 4 {
			t.Fatalf("expected 4 records, got %d", len(all))
		}
		for i, rec := range all {
			want := seedParticipants()[i]
			if rec.ID == target.ID {
				want = changed
			}
			if rec != want {
				t.Fatalf("position %d: got %+v, want %+v", i, rec, want)
			}
		}
	}
}

func TestStoreUnknownIDIsNoop(t *testing.T) {
	store := collection.NewStore(seedParticipants())
	before := store.All()

	store.Update("missing", models.Participant{ID: "missing", FullName: "x"})
	store.Remove("missing")

	if !reflect.DeepEqual(store.All(), before) {
		t.Fatalf("store changed on unknown id")
	}
}

func TestStoreRemoveAndAdd(t *testing.T) {
	store := collection.NewStore(seedParticipants())
	store.Remove("2")
	store.Add(models.Participant{ID: "9"})

	if got := ids(store.All()); !reflect.DeepEqual(got, []string{"1", "3", "4", "9"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if store.Has("2") {
		t.Fatalf("removed record still present")
	}
}

func TestStoreDoesNotAliasNestedSlices(t *testing.T) {
	seed := []models.Team{{ID: "1", Members: []models.Member{{ID: "m1", Name: "A"}}}}
	store := collection.NewStore(seed)

	seed[0].Members[0].Name = "changed seed"
	all := store.All()
	all[0].Members[0].Name = "changed copy"

	got, _ := store.Get("1")
	if got.Members[0].Name != "A" {
		t.Fatalf("store aliased a member slice: %q", got.Members[0].Name)
	}
}
