package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"

	"flounder-swim/internal/clock"
	"flounder-swim/internal/collection"
	"flounder-swim/internal/fixtures"
	"flounder-swim/internal/metrics"
	"flounder-swim/internal/portal"
	"flounder-swim/internal/server"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	seed, err := fixtures.Default()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	reg := prometheus.NewRegistry()
	app := portal.New(portal.Options{
		Seed:    seed,
		Clock:   clock.NewFake(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)),
		Mode:    collection.CreateAppend,
		Metrics: metrics.New(reg),
	})
	h, err := server.Handler(app, slog.New(slog.NewTextHandler(io.Discard, nil)), reg)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return h
}

func do(t *testing.T, h http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// post expects the mutation to redirect back to page.
func post(t *testing.T, h http.Handler, path string, form url.Values, page string) {
	t.Helper()
	if form == nil {
		form = url.Values{}
	}
	rec := do(t, h, http.MethodPost, path, form)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("POST %s = %d, want 303", path, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != page {
		t.Fatalf("POST %s redirected to %q, want %q", path, loc, page)
	}
}

func get(t *testing.T, h http.Handler, path string) *goquery.Document {
	t.Helper()
	rec := do(t, h, http.MethodGet, path, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s = %d: %s", path, rec.Code, rec.Body)
	}
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return doc
}

func texts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHomeAndLayout(t *testing.T) {
	h := newHandler(t)
	doc := get(t, h, "/")
	if got := strings.TrimSpace(doc.Find("h1").First().Text()); got != "Flounder Swimming" {
		t.Fatalf("hero title = %q", got)
	}
	if doc.Find(".lead strong").Length() != 1 {
		t.Fatalf("hero markdown not rendered")
	}
	if n := doc.Find("header nav a").Length(); n != 5 {
		t.Fatalf("nav links = %d", n)
	}
	if doc.Find("header nav a.active").Length() != 0 {
		t.Fatalf("no nav item should be active on the landing page")
	}

	doc = get(t, h, "/teams")
	if got := texts(doc.Find("header nav a.active")); !equal(got, []string{"Команды"}) {
		t.Fatalf("active nav = %v", got)
	}

	if rec := do(t, h, http.MethodGet, "/nope", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path = %d", rec.Code)
	}
}

func TestTeamsRankingFollowsSavedPoints(t *testing.T) {
	h := newHandler(t)
	doc := get(t, h, "/teams")
	if got := texts(doc.Find("article.team h2")); !equal(got, []string{"Дельфины", "Акулы", "Волны"}) {
		t.Fatalf("seed ranking = %v", got)
	}
	if doc.Find(`article[data-id="1"] .description strong`).Length() != 1 {
		t.Fatalf("team description markdown not rendered")
	}

	post(t, h, "/teams/2/edit", nil, "/teams")
	doc = get(t, h, "/teams")
	if doc.Find("article.team.editing").Length() != 1 || doc.Find(".badge").Length() != 2 {
		t.Fatalf("editing card should drop its badge")
	}

	post(t, h, "/teams/2/save", url.Values{"name": {"Волны"}, "totalPoints": {"300"}}, "/teams")
	doc = get(t, h, "/teams")
	if got := texts(doc.Find("article.team h2")); !equal(got, []string{"Волны", "Дельфины", "Акулы"}) {
		t.Fatalf("ranking after save = %v", got)
	}
	if got := texts(doc.Find(".badge")); !equal(got, []string{"Топ 1", "Топ 2", "Топ 3"}) {
		t.Fatalf("badges = %v", got)
	}
}

func TestTeamMembersThroughForms(t *testing.T) {
	h := newHandler(t)
	post(t, h, "/teams/1/edit", nil, "/teams")
	post(t, h, "/teams/members/add", url.Values{"coach": {"Смирнов А.В."}}, "/teams")

	doc := get(t, h, "/teams")
	form := doc.Find(`article[data-id="1"] form#team-1`)
	if form.Length() != 1 {
		t.Fatalf("team form missing")
	}
	if v, _ := form.Find(`input[name="coach"]`).Attr("value"); v != "Смирнов А.В." {
		t.Fatalf("coach typed before adding a member = %q", v)
	}
	if n := doc.Find(`input[name="member.name"][form="team-1"]`).Length(); n != 1 {
		t.Fatalf("member inputs attached to the team form = %d", n)
	}
	if v, _ := doc.Find(`button[formaction="/teams/members/save"]`).Attr("form"); v != "team-1" {
		t.Fatalf("member save button posts form %q", v)
	}

	post(t, h, "/teams/members/save", url.Values{
		"name":            {"Дельфины Про"},
		"member.name":     {"Орлов Павел"},
		"member.initials": {"ОП"},
		"member.age":      {"19"},
	}, "/teams")
	post(t, h, "/teams/members/m3/delete", nil, "/teams")
	post(t, h, "/teams/1/save", url.Values{"name": {"Дельфины Про"}, "coach": {"Смирнов А.В."}}, "/teams")

	doc = get(t, h, "/teams")
	card := doc.Find(`article[data-id="1"]`)
	got := texts(card.Find(".members li"))
	if len(got) != 3 || !strings.Contains(got[2], "Орлов Павел") {
		t.Fatalf("members = %v", got)
	}
	if name := strings.TrimSpace(card.Find("h2").Text()); name != "Дельфины Про" {
		t.Fatalf("team name = %q", name)
	}
}

func TestProtocolDistanceFieldsPostWithProtocolForm(t *testing.T) {
	h := newHandler(t)
	post(t, h, "/protocol/1/open", nil, "/protocol")

	doc := get(t, h, "/protocol")
	if n := doc.Find(`input[name="distance.d1.name"][form="protocol-form"]`).Length(); n != 1 {
		t.Fatalf("distance name inputs on the protocol form = %d", n)
	}
	if n := doc.Find(`select[name="distance.d1.gender"][form="protocol-form"]`).Length(); n != 1 {
		t.Fatalf("distance gender selects on the protocol form = %d", n)
	}

	post(t, h, "/protocol/distances/add", url.Values{"title": {"Весенний кубок"}}, "/protocol")
	doc = get(t, h, "/protocol")
	if v, _ := doc.Find(`#protocol-form input[name="title"]`).Attr("value"); v != "Весенний кубок" {
		t.Fatalf("title typed before adding a distance = %q", v)
	}

	post(t, h, "/protocol/save", url.Values{
		"title":                 {"Весенний кубок"},
		"distance.d1.name":      {"100м Брасс"},
		"distance.d1.gender":    {"female"},
		"distance.unknown.name": {"ignored"},
	}, "/protocol")

	post(t, h, "/protocol/1/open", nil, "/protocol")
	doc = get(t, h, "/protocol")
	if v, _ := doc.Find(`input[name="distance.d1.name"]`).Attr("value"); v != "100м Брасс" {
		t.Fatalf("saved distance name = %q", v)
	}
	if v, _ := doc.Find(`select[name="distance.d1.gender"] option[selected]`).Attr("value"); v != "female" {
		t.Fatalf("saved distance gender = %q", v)
	}
	if n := doc.Find("section.distance").Length(); n != 2 {
		t.Fatalf("distances = %d", n)
	}
}

func TestLeavingPageDiscardsEdits(t *testing.T) {
	h := newHandler(t)
	post(t, h, "/teams/3/delete", nil, "/teams")
	if n := get(t, h, "/teams").Find("article.team").Length(); n != 2 {
		t.Fatalf("cards after delete = %d", n)
	}
	get(t, h, "/awards")
	if n := get(t, h, "/teams").Find("article.team").Length(); n != 3 {
		t.Fatalf("cards after navigating back = %d", n)
	}
}

func TestParticipantsFilterSortAndEdit(t *testing.T) {
	h := newHandler(t)
	post(t, h, "/participants/filter", url.Values{"discipline": {"Вольный стиль"}}, "/participants")
	post(t, h, "/participants/sort", url.Values{"field": {"age"}}, "/participants")
	post(t, h, "/participants/sort", url.Values{"field": {"age"}}, "/participants")

	doc := get(t, h, "/participants")
	rows := doc.Find("#participants tbody tr")
	var ids []string
	rows.Each(func(_ int, s *goquery.Selection) { ids = append(ids, s.AttrOr("data-id", "")) })
	if !equal(ids, []string{"3", "1", "2"}) {
		t.Fatalf("filtered rows by age desc = %v", ids)
	}
	if v, _ := doc.Find(`select[name="discipline"] option[selected]`).First().Attr("value"); v != "Вольный стиль" {
		t.Fatalf("selected discipline = %q", v)
	}
	if got := strings.TrimSpace(doc.Find(`button.sort[data-field="age"]`).Text()); !strings.HasSuffix(got, "▼") {
		t.Fatalf("sort header = %q", got)
	}

	post(t, h, "/participants/2/edit", nil, "/participants")
	doc = get(t, h, "/participants")
	if v, _ := doc.Find(`tr.editing input[name="fullName"]`).Attr("value"); v != "Петрова Мария Сергеевна" {
		t.Fatalf("edit row = %q", v)
	}

	post(t, h, "/participants/2/save", url.Values{"fullName": {"Петрова Мария"}, "age": {"23"}}, "/participants")
	doc = get(t, h, "/participants")
	if got := strings.TrimSpace(doc.Find(`tr[data-id="2"] .name`).Text()); got != "Петрова Мария" {
		t.Fatalf("saved name = %q", got)
	}
}

func TestParticipantsAddAndCancelAppendMode(t *testing.T) {
	h := newHandler(t)
	post(t, h, "/participants/add", nil, "/participants")
	post(t, h, "/participants/cancel", nil, "/participants")
	if n := get(t, h, "/participants").Find("#participants tbody tr").Length(); n != 7 {
		t.Fatalf("rows = %d, want the cancelled stub kept", n)
	}
}

func TestProtocolDialogAndLanes(t *testing.T) {
	h := newHandler(t)
	post(t, h, "/protocol/1/open", nil, "/protocol")
	post(t, h, "/protocol/lanes/l1/edit", nil, "/protocol")

	doc := get(t, h, "/protocol")
	if doc.Find("dialog#protocol-dialog").Length() != 1 {
		t.Fatalf("dialog not open")
	}
	if doc.Find(`tr.editing[data-id="l1"]`).Length() != 1 {
		t.Fatalf("lane l1 not in edit mode")
	}

	post(t, h, "/protocol/lanes/save", url.Values{"fullName": {"Петрова Мария"}, "time": {"00:26.8"}}, "/protocol")
	post(t, h, "/protocol/distances/d1/heats/add", nil, "/protocol")
	post(t, h, "/protocol/save", url.Values{"title": {"Финал города"}, "competitionType": {"cup"}}, "/protocol")

	doc = get(t, h, "/protocol")
	if doc.Find("dialog").Length() != 0 {
		t.Fatalf("dialog still open after save")
	}
	card := doc.Find(`article.protocol[data-id="1"]`)
	if got := strings.TrimSpace(card.Find("h2").Text()); got != "Финал города" {
		t.Fatalf("title = %q", got)
	}
	if !strings.Contains(card.Text(), "Кубок") {
		t.Fatalf("competition type label missing: %q", card.Text())
	}

	post(t, h, "/protocol/1/open", nil, "/protocol")
	doc = get(t, h, "/protocol")
	if got := strings.TrimSpace(doc.Find(`tr[data-id="l1"] td`).Eq(1).Text()); got != "Петрова Мария" {
		t.Fatalf("saved lane = %q", got)
	}
	if n := doc.Find("table.heat").Length(); n != 2 {
		t.Fatalf("heats = %d", n)
	}
}

func TestProtocolDownloadNotImplemented(t *testing.T) {
	h := newHandler(t)
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := do(t, h, method, "/protocol/download", url.Values{})
		if rec.Code != http.StatusNotImplemented {
			t.Fatalf("%s download = %d", method, rec.Code)
		}
		doc, err := goquery.NewDocumentFromReader(rec.Body)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(doc.Find(".notice").Text()); got != portal.DownloadNotice {
			t.Fatalf("notice = %q", got)
		}
	}
}

func TestAwardsTabs(t *testing.T) {
	h := newHandler(t)
	if n := get(t, h, "/awards").Find("section.award").Length(); n != 4 {
		t.Fatalf("all tab = %d distances", n)
	}
	doc := get(t, h, "/awards?discipline="+url.QueryEscape("Брасс"))
	if got := texts(doc.Find("section.award h2")); !equal(got, []string{"100м Брасс"}) {
		t.Fatalf("brass tab = %v", got)
	}
	if got := texts(doc.Find(".tabs a.active")); !equal(got, []string{"Брасс"}) {
		t.Fatalf("active tab = %v", got)
	}
	if n := doc.Find(".gold").Length(); n != 1 {
		t.Fatalf("gold winners = %d", n)
	}
}

func TestRegulationsHeatNames(t *testing.T) {
	h := newHandler(t)
	post(t, h, "/regulations/heats/add", nil, "/regulations")
	post(t, h, "/regulations/heats/1768035600000/save", url.Values{"name": {"Финал В"}, "stage": {"Финал"}}, "/regulations")
	post(t, h, "/regulations/ages/2/delete", nil, "/regulations")

	doc := get(t, h, "/regulations")
	rows := doc.Find("#heat-names tbody tr")
	if rows.Length() != 7 {
		t.Fatalf("heat rows = %d", rows.Length())
	}
	if got := strings.TrimSpace(rows.Last().Find("td").Eq(1).Text()); got != "Финал В" {
		t.Fatalf("last heat = %q", got)
	}
	if n := doc.Find("#age-categories tbody tr").Length(); n != 4 {
		t.Fatalf("age rows = %d", n)
	}
}

func TestMetricsAndHealth(t *testing.T) {
	h := newHandler(t)
	get(t, h, "/teams")
	post(t, h, "/teams/1/delete", nil, "/teams")

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	body := rec.Body.String()
	for _, want := range []string{
		`flounder_page_activations_total{page="teams"} 1`,
		`flounder_record_operations_total{op="delete",page="teams"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics missing %s:\n%s", want, body)
		}
	}

	rec = do(t, h, http.MethodGet, "/healthz", nil)
	var health struct {
		OK   bool   `json:"ok"`
		Page string `json:"page"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatal(err)
	}
	if !health.OK || health.Page != "teams" {
		t.Fatalf("health = %+v", health)
	}
}
