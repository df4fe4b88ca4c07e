package ui

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showroom/adapters/excel"
	"showroom/app"
	"showroom/domain/vehicle"
	"showroom/internal"
	"showroom/internal/testkit"
)

func newTestApp(t *testing.T, src *testkit.StaticSource) *App {
	t.Helper()
	logger := internal.NewNopLogger()
	reader := excel.NewDataReader(excel.DefaultExcelConfig(), logger)
	svc := app.NewInventoryService(src, reader, vehicle.DefaultSchema(), logger)

	a, err := NewApp(Config{Logger: logger}, svc, nil)
	require.NoError(t, err)
	return a
}

func get(t *testing.T, a *App, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func workbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	data, err := testkit.Workbook(testkit.Sheet{Name: "Inventory", Rows: rows})
	require.NoError(t, err)
	return data
}

func TestListRendersCards(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: testkit.SampleWorkbook()})

	rec, doc := get(t, a, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "list", doc.Find("body").AttrOr("data-page", ""))
	_, hidden := doc.Find("#loading").Attr("hidden")
	assert.True(t, hidden)

	cards := doc.Find(".vehicle-card")
	require.Equal(t, 2, cards.Length())

	first := cards.Eq(0)
	assert.Equal(t, "/vehicle?id=A100", first.AttrOr("href", ""))
	assert.Equal(t, "2019 Honda Civic EX", strings.TrimSpace(first.Find(".vehicle-card__title").Text()))
	assert.Equal(t, "$19,999", first.Find(".vehicle-card__price").Text())
	assert.Equal(t, "45,000 mi", first.Find(".vehicle-card__mileage").Text())
	assert.Equal(t, "civic-1.jpg", first.Find("img").AttrOr("src", ""))

	second := cards.Eq(1)
	assert.Equal(t, "Call for price", second.Find(".vehicle-card__price").Text())
	assert.Equal(t, "0 mi", second.Find(".vehicle-card__mileage").Text())
	assert.Equal(t, 0, second.Find("img").Length())

	assert.Contains(t, doc.Find("#inventory-summary").Text(), "2 vehicles")
}

func TestListEmptyInventory(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: workbook(t, []interface{}{"Stock #", "Make"})})

	rec, doc := get(t, a, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, msgListEmpty, doc.Find("#no-vehicles").Text())
	assert.Equal(t, 0, doc.Find(".vehicle-card").Length())
}

func TestListLoadFailure(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Err: fmt.Errorf("connection refused")})

	rec, doc := get(t, a, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgListLoadFailed, doc.Find("#loading").Text())
	assert.Equal(t, 0, doc.Find(".vehicle-card").Length())
}

func TestListCardWithoutIdentifierIsNotLinked(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: workbook(t,
		[]interface{}{"Stock #", "Make", "Model"},
		[]interface{}{nil, "Kia", "Soul"},
	)})

	_, doc := get(t, a, "/")
	card := doc.Find(".vehicle-card")
	require.Equal(t, 1, card.Length())
	assert.True(t, card.HasClass("vehicle-card--static"))
	assert.Equal(t, 0, doc.Find("a.vehicle-card").Length())
}

func TestDetailMissingParameterSkipsLoad(t *testing.T) {
	src := &testkit.StaticSource{Data: testkit.SampleWorkbook()}
	a := newTestApp(t, src)

	for _, target := range []string{"/vehicle", "/vehicle?id=", "/vehicle?id=%20%20"} {
		rec, doc := get(t, a, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, msgNoVehicle, doc.Find("#loading").Text(), target)
		assert.Equal(t, 0, doc.Find("#vehicle-detail").Length(), target)
	}
	assert.Equal(t, 0, src.Fetches())
}

func TestDetailRendersVehicle(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: testkit.SampleWorkbook()})

	rec, doc := get(t, a, "/vehicle?id=A100")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "detail", doc.Find("body").AttrOr("data-page", ""))
	assert.Equal(t, "2019 Honda Civic EX", doc.Find("#vehicle-title").Text())
	assert.Equal(t, "$19,999", doc.Find("#vehicle-price").Text())
	assert.Equal(t, "2HGFC2F59KH500001", doc.Find("#vehicle-vin").Text())
	assert.Equal(t, "45,000 mi", doc.Find("#vehicle-mileage").Text())

	slides := doc.Find("#vehicle-main .swiper-slide img")
	require.Equal(t, 3, slides.Length())
	assert.Equal(t, "civic-3.jpg", slides.Eq(2).AttrOr("src", ""))
	assert.Equal(t, 3, doc.Find("#vehicle-thumbs .swiper-slide").Length())

	desc, err := doc.Find("#vehicle-description").Html()
	require.NoError(t, err)
	assert.Contains(t, desc, "<strong>Clean</strong>")
	assert.Equal(t, 1, doc.Find("#fullscreen-overlay").Length())
}

func TestDetailWithoutImagesShowsPlaceholder(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: testkit.SampleWorkbook()})

	rec, doc := get(t, a, "/vehicle?id=B200")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "No images available", strings.TrimSpace(doc.Find(".swiper-slide--placeholder").Text()))
	assert.Equal(t, 0, doc.Find("#vehicle-thumbs").Length())
	assert.Equal(t, "Call for price", doc.Find("#vehicle-price").Text())
}

func TestDetailResolvesAlternateIdentifierColumn(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: workbook(t,
		[]interface{}{"Stock #", "StockNumber", "Year", "Make", "Model"},
		[]interface{}{"A1", "", "2020", "Ford", "Escape"},
		[]interface{}{"", "Z9", "2018", "Volvo", "XC60"},
	)})

	rec, doc := get(t, a, "/vehicle?id=Z9")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2018 Volvo XC60", doc.Find("#vehicle-title").Text())
}

func TestDetailNotFound(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: testkit.SampleWorkbook()})

	rec, doc := get(t, a, "/vehicle?id=NOPE")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, msgVehicleNotFound, doc.Find("#loading").Text())
}

func TestDetailLoadFailure(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Err: fmt.Errorf("timeout")})

	rec, doc := get(t, a, "/vehicle?id=A100")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgDetailLoadFailed, doc.Find("#loading").Text())
}

func TestStaticAssetsServed(t *testing.T) {
	a := newTestApp(t, &testkit.StaticSource{Data: testkit.SampleWorkbook()})

	for _, path := range []string{"/static/js/showroom.js", "/static/css/showroom.css"} {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
