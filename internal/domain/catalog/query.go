package catalog

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sort criterio de ordenamiento que entiende el API remoto.
type Sort string

const (
	SortDateDesc  Sort = "date_desc"
	SortDateAsc   Sort = "date_asc"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortNameAsc   Sort = "name_asc"
	SortNameDesc  Sort = "name_desc"
)

// Tabla bidireccional etiqueta de UI <-> criterio remoto. Conjunto cerrado:
// una etiqueta desconocida cae al orden por defecto (más recientes primero).
var sortByLabel = map[string]Sort{
	"newest":    SortDateDesc,
	"oldest":    SortDateAsc,
	"priceAsc":  SortPriceAsc,
	"priceDesc": SortPriceDesc,
	"nameAsc":   SortNameAsc,
	"nameDesc":  SortNameDesc,
}

var labelBySort = map[Sort]string{
	SortDateDesc:  "newest",
	SortDateAsc:   "oldest",
	SortPriceAsc:  "priceAsc",
	SortPriceDesc: "priceDesc",
	SortNameAsc:   "nameAsc",
	SortNameDesc:  "nameDesc",
}

// FromSortLabel traduce la etiqueta del selector de la UI al criterio remoto.
func FromSortLabel(label string) Sort {
	if s, ok := sortByLabel[label]; ok {
		return s
	}
	return SortDateDesc
}

// Label devuelve la etiqueta de UI del criterio, o "newest" si no está en la tabla.
func (s Sort) Label() string {
	if l, ok := labelBySort[s]; ok {
		return l
	}
	return "newest"
}

// CatalogQuery consulta normalizada lista para serializar hacia el API remoto.
type CatalogQuery struct {
	Page       int
	PageSize   int
	CategoryID string
	Search     string
	PriceMin   string
	PriceMax   string
	Sort       Sort
}

// Values serializa la consulta. Los campos opcionales vacíos se omiten por
// completo: nunca se envían parámetros con cadena vacía.
func (q CatalogQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.PageSize))
	if q.CategoryID != "" {
		v.Set("category_id", q.CategoryID)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.PriceMin != "" {
		v.Set("price_min", q.PriceMin)
	}
	if q.PriceMax != "" {
		v.Set("price_max", q.PriceMax)
	}
	v.Set("sort", string(q.Sort))
	return v
}

// FilterState estado de filtros/orden/página de un listado del catálogo.
// Invariante: cualquier cambio de filtro u orden regresa Page a 1; solo la
// navegación de páginas la avanza.
type FilterState struct {
	page       int
	pageSize   int
	categoryID string
	search     string
	priceMin   string
	priceMax   string
	sort       Sort
}

// NewFilterState crea el estado inicial: página 1, sin filtros, más recientes primero.
func NewFilterState(pageSize int) *FilterState {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &FilterState{page: 1, pageSize: pageSize, sort: SortDateDesc}
}

// Page devuelve la página actual (>= 1).
func (f *FilterState) Page() int { return f.page }

// SetPage navega a una página concreta sin tocar filtros.
func (f *FilterState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.page = page
}

// NextPage avanza una página.
func (f *FilterState) NextPage() { f.page++ }

// SetSearch cambia el término de búsqueda y regresa a la página 1.
func (f *FilterState) SetSearch(term string) {
	f.search = strings.TrimSpace(term)
	f.page = 1
}

// SetCategory cambia la categoría y regresa a la página 1.
func (f *FilterState) SetCategory(categoryID string) {
	f.categoryID = categoryID
	f.page = 1
}

// SetPriceRange cambia el rango de precio y regresa a la página 1.
// Cadena vacía en cualquiera de los extremos significa "sin límite".
func (f *FilterState) SetPriceRange(min, max string) {
	f.priceMin = min
	f.priceMax = max
	f.page = 1
}

// SetSort cambia el ordenamiento (etiqueta de UI) y regresa a la página 1.
func (f *FilterState) SetSort(label string) {
	f.sort = FromSortLabel(label)
	f.page = 1
}

// ToRemoteQuery produce la consulta normalizada para el API remoto.
// El término de búsqueda se normaliza sin tildes ("pastelería" -> "pasteleria")
// porque el catálogo remoto indexa en ASCII plano.
func (f *FilterState) ToRemoteQuery() CatalogQuery {
	return CatalogQuery{
		Page:       f.page,
		PageSize:   f.pageSize,
		CategoryID: f.categoryID,
		Search:     foldAccents(f.search),
		PriceMin:   f.priceMin,
		PriceMax:   f.priceMax,
		Sort:       f.sort,
	}
}

// foldAccents elimina marcas diacríticas: descompone a NFD, quita los
// combining marks y recompone a NFC.
func foldAccents(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
