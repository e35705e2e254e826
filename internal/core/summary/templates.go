package summary

const (
	// NoArticlesSentinel is the whole context when the view is empty.
	NoArticlesSentinel = "Aucun article ne correspond aux filtres actuels."

	// TruncationMarker replaces the lines dropped by structural truncation.
	TruncationMarker = "[... Contenu tronqué pour respecter les limites de tokens ...]"

	// HardTruncationMarker ends a context cut by raw character truncation.
	HardTruncationMarker = "\n[... Tronqué ...]"

	noneSelected  = "Aucun"
	noArticleLine = "- Aucun article dans la sélection filtrée"
	untitled      = "(sans titre)"
	previewRunes  = 300
	firstKeywords = 5
	firstOthers   = 3
	dateLayout    = "2006-01-02"
)

// contextTemplate arguments, in order: total, start date, end date, selected
// keywords, selected locations, keywords, locations, people, organizations,
// article samples.
const contextTemplate = `
## Aperçu du Dataset Filtré

- **Total d'articles** : %d
- **Période** : du %s au %s
- **Filtres appliqués** :
  - Mots-clés sélectionnés : %s
  - Lieux sélectionnés : %s

---

## Top Mots-Clés (fréquence)
%s

## Top Lieux
%s

## Top Personnalités
%s

## Top Organisations
%s

---

## Échantillon d'Articles (les plus récents)
%s
`

// articleTemplate arguments: title, date, keywords, locations, organizations, people.
const articleTemplate = `
### %s
- **Date** : %s
- **Mots-clés** : %s
- **Lieux** : %s
- **Organisations** : %s
- **Personnalités** : %s
`
