package ingest

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Othmakboul/Media-Analytics-Dashboard/internal/core/model"
)

var (
	synthTopics    = []string{"Politique", "Économie", "Santé", "Sport", "Culture", "Technologie", "Environnement"}
	synthLocations = []string{"Paris", "Londres", "Washington", "Moscou", "Pékin", "Bruxelles", "Berlin", "Dakar", "Alger"}
	synthOrgs      = []string{"ONU", "UE", "OTAN", "OMS", "FMI", "Google", "Tesla", "Total", "Sanofi"}
	synthPersons   = []string{"Macron", "Biden", "Poutine", "Zelensky", "Musk", "Mbappé", "Von der Leyen", "Xi Jinping"}

	synthStart = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
)

const synthSpanDays = 700

// Synthesize generates n fictitious articles spread over 2022-2023. The same
// seed always yields the same corpus.
func Synthesize(n int, seed int64) []model.Article {
	rng := rand.New(rand.NewSource(seed))

	articles := make([]model.Article, 0, n)
	for i := 0; i < n; i++ {
		date := synthStart.AddDate(0, 0, rng.Intn(synthSpanDays+1))
		topic := synthTopics[rng.Intn(len(synthTopics))]

		kws := append([]string{topic}, sample(rng, synthTopics, rng.Intn(3))...)
		loc := sample(rng, synthLocations, 1+rng.Intn(3))
		org := sample(rng, synthOrgs, rng.Intn(3))
		per := sample(rng, synthPersons, rng.Intn(3))

		articles = append(articles, model.Article{
			Date:          date,
			Title:         fmt.Sprintf("Article sur %s et %s", topic, kws[len(kws)-1]),
			Content:       fmt.Sprintf("Ceci est un article fictif parlant de %s à %s.", strings.Join(kws, ", "), strings.Join(loc, ", ")),
			Keywords:      kws,
			Locations:     loc,
			Organizations: org,
			People:        per,
		})
	}
	return articles
}

// sample picks k distinct values without replacement.
func sample(rng *rand.Rand, values []string, k int) []string {
	out := make([]string, 0, k)
	for _, i := range rng.Perm(len(values))[:k] {
		out = append(out, values[i])
	}
	return out
}
