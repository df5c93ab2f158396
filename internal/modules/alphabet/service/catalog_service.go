package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hangul/internal/modules/alphabet/domain"
	alphabetout "hangul/internal/modules/alphabet/port/out"
	apperrors "hangul/internal/platform/errors"
)

type CatalogService struct {
	catalog *domain.Catalog
}

// NewCatalogService loads and validates the catalog once.
func NewCatalogService(ctx context.Context, source alphabetout.CatalogSource) (*CatalogService, error) {
	letters, words, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := domain.NewCatalog(letters, words)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &CatalogService{catalog: catalog}, nil
}

func (s *CatalogService) Catalog() *domain.Catalog {
	return s.catalog
}

func (s *CatalogService) Letters(category string, level int) ([]domain.Letter, error) {
	cat := domain.Category(strings.ToLower(strings.TrimSpace(category)))
	if cat != "" && cat != domain.CategoryConsonant && cat != domain.CategoryVowel {
		return nil, fmt.Errorf("%w: category must be consonant or vowel", apperrors.ErrInvalidInput)
	}
	if level < 0 || level > domain.MaxDifficulty {
		return nil, fmt.Errorf("%w: level must be between 1 and %d", apperrors.ErrInvalidInput, domain.MaxDifficulty)
	}
	return s.catalog.Filter(cat, level), nil
}

// Resolve finds a letter by numeric id, glyph or case-insensitive name.
func (s *CatalogService) Resolve(ref string) (domain.Letter, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Letter{}, fmt.Errorf("%w: letter reference is required", apperrors.ErrInvalidInput)
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if l, ok := s.catalog.Letter(id); ok {
			return l, nil
		}
		return domain.Letter{}, fmt.Errorf("letter %d: %w", id, apperrors.ErrNotFound)
	}
	if l, ok := s.catalog.LetterByGlyph(ref); ok {
		return l, nil
	}
	for _, l := range s.catalog.Letters() {
		if strings.EqualFold(l.Name, ref) {
			return l, nil
		}
	}
	return domain.Letter{}, fmt.Errorf("letter %q: %w", ref, apperrors.ErrNotFound)
}

func (s *CatalogService) Word(id int) (domain.ExampleWord, error) {
	w, ok := s.catalog.Word(id)
	if !ok {
		return domain.ExampleWord{}, fmt.Errorf("word %d: %w", id, apperrors.ErrNotFound)
	}
	return w, nil
}
