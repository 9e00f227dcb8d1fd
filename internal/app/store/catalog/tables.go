// internal/app/store/catalog/tables.go
package catalogstore

import "github.com/dalemusser/devcatalog/internal/domain/models"

// SubcategoryPlaceholder is returned for subcategory ids missing from the
// name index.
const SubcategoryPlaceholder = "Nombre no disponible"

// categoryNames maps category identifiers to display names.
var categoryNames = map[string]string{
	"design":   "Diseño UX/UI",
	"frontend": "Frontend",
	"backend":  "Backend",
	"IA":       "IA",
	"english":  "Inglés",
	"other":    "Otros",
}

// categories is the menu order. IDs line up with categoryGroups (ID n is
// categoryGroups[n-1]).
var categories = []models.Category{
	{ID: 1, Name: "Diseño UX/UI"},
	{ID: 2, Name: "Backend"},
	{ID: 3, Name: "Frontend"},
	{ID: 4, Name: "IA"},
	{ID: 5, Name: "Inglés"},
	{ID: 6, Name: "Otros"},
}

var categoryGroups = []models.CategoryGroup{
	{Category: "design", Subcategories: []string{"colors", "fonts", "icons", "images"}},
	{Category: "backend", Subcategories: []string{"learningTools", "onlineCompilers", "exercisesChallenges"}},
	{Category: "frontend", Subcategories: []string{"onlineCompilers2", "CSS_Tools", "apis"}},
	{Category: "IA", Subcategories: []string{
		"chats",
		"generate_imagesVideos",
		"generateAudio",
		"generateText",
		"others",
	}},
	{Category: "english", Subcategories: []string{
		"grammarVocabulary",
		"listeningSpeaking",
		"writing",
		"readingComprehension",
		"courseFree",
		"pronunciation",
	}},
	{Category: "other", Subcategories: []string{"extensions", "security", "dba"}},
}

var subcategoryNames = map[string]string{
	"colors":                "Generador de paletas de colores",
	"fonts":                 "Fuentes de texto",
	"icons":                 "Iconos y Gráficos",
	"images":                "Recursos de Imágenes",
	"learningTools":         "Visores de algoritmos",
	"onlineCompilers":       "Compiladores backend Online",
	"onlineCompilers2":      "Compiladores frontend Online",
	"exercisesChallenges":   "Ejercicios y retos",
	"CSS_Tools":             "Herramientas CSS",
	"apis":                  "API Testing",
	"extensions":            "Extensiones de Visual Studio Code",
	"security":              "Herramientas de Seguridad",
	"dba":                   "Herramientas DBA",
	"chats":                 "Chats de IA",
	"generate_imagesVideos": "Generadores de imágenes y videos",
	"generateAudio":         "Generadores de audio",
	"generateText":          "Generadores de texto",
	"others":                "Otros recursos de IA",
	"grammarVocabulary":     "Gramática y vocabulario",
	"listeningSpeaking":     "Escucha y habla",
	"writing":               "Escritura",
	"readingComprehension":  "Comprensión lectora",
	"courseFree":            "Cursos gratuitos",
	"pronunciation":         "Pronunciación",
}

// Categories returns the fixed, ordered category menu.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// CategoriesData returns the fixed category groups in menu order.
// The returned slices are copies; callers may modify them freely.
func CategoriesData() []models.CategoryGroup {
	out := make([]models.CategoryGroup, len(categoryGroups))
	for i, g := range categoryGroups {
		out[i] = cloneGroup(g)
	}
	return out
}

// CategoryByIndex resolves a 1-based selection index to its group.
func CategoryByIndex(index int) (models.CategoryGroup, bool) {
	if index < 1 || index > len(categoryGroups) {
		return models.CategoryGroup{}, false
	}
	return cloneGroup(categoryGroups[index-1]), true
}

// IndexOf returns the 1-based index of the category identifier, or 0 when
// the identifier is unknown.
func IndexOf(category string) int {
	for i, g := range categoryGroups {
		if g.Category == category {
			return i + 1
		}
	}
	return 0
}

// SubCategoryName returns the display name for a subcategory id, or
// SubcategoryPlaceholder when the id is not indexed.
func SubCategoryName(id string) string {
	if name, ok := subcategoryNames[id]; ok && name != "" {
		return name
	}
	return SubcategoryPlaceholder
}

// MapCategory returns the display name for a category identifier. Unmapped
// identifiers come back unchanged, and "" passes through as "".
func MapCategory(id string) string {
	if name, ok := categoryNames[id]; ok {
		return name
	}
	return id
}

// MissingSubcategoryNames lists subcategories referenced by a group that have
// no entry in the name index. Bootstrap logs these at startup.
func MissingSubcategoryNames() []string {
	var missing []string
	for _, g := range categoryGroups {
		for _, s := range g.Subcategories {
			if _, ok := subcategoryNames[s]; !ok {
				missing = append(missing, s)
			}
		}
	}
	return missing
}

func cloneGroup(g models.CategoryGroup) models.CategoryGroup {
	subs := make([]string, len(g.Subcategories))
	copy(subs, g.Subcategories)
	return models.CategoryGroup{Category: g.Category, Subcategories: subs}
}
