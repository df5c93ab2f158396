package domain_test

import (
	"context"
	"testing"
	"time"

	alphabetout "hangul/internal/modules/alphabet/adapter/out"
	alphabetdomain "hangul/internal/modules/alphabet/domain"
	alphabetservice "hangul/internal/modules/alphabet/service"
)

var day0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func loadCatalog(t *testing.T) *alphabetdomain.Catalog {
	t.Helper()
	svc, err := alphabetservice.NewCatalogService(context.Background(), alphabetout.NewEmbeddedCatalogSource())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return svc.Catalog()
}

type fakeTiers map[int]int

func (f fakeTiers) Difficulty(id int) int { return f[id] }

func (f fakeTiers) IDsAtLevel(level int) []int {
	ids := []int{}
	for id := 1; id <= 30; id++ {
		if f[id] == level {
			ids = append(ids, id)
		}
	}
	return ids
}
