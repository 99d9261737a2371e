package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadCatalog decodes and validates catalog JSON. Reference data is
// hand-authored, so validation failures are data-quality errors surfaced at
// startup, never silently repaired.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var cat Catalog
	if err := json.NewDecoder(r).Decode(&cat); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := validateCatalog(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalogBytes is the entry point for catalogs fetched from object
// storage.
func LoadCatalogBytes(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := validateCatalog(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func validateCatalog(cat *Catalog) error {
	for _, d := range cat.Degrees {
		if d.Name == "" {
			return fmt.Errorf("catalog: degree with empty name")
		}
		idx := d.CourseIndex()
		for _, c := range append(append([]Course{}, d.CoreCourses...), d.Electives...) {
			if c.Code == "" {
				return fmt.Errorf("catalog: degree %q has a course with empty code", d.Name)
			}
			if c.Credits <= 0 {
				return fmt.Errorf("catalog: course %s has non-positive credits %d", c.Code, c.Credits)
			}
			for _, p := range c.Prerequisites {
				if _, ok := idx[p]; !ok {
					return fmt.Errorf("catalog: course %s requires %s, which is not in degree %q", c.Code, p, d.Name)
				}
			}
		}
	}
	return nil
}

// LoadCareerData decodes and validates career JSON.
func LoadCareerData(r io.Reader) (*CareerData, error) {
	var cd CareerData
	if err := json.NewDecoder(r).Decode(&cd); err != nil {
		return nil, fmt.Errorf("decoding career data: %w", err)
	}
	if err := validateCareerData(&cd); err != nil {
		return nil, err
	}
	return &cd, nil
}

func LoadCareerDataFile(path string) (*CareerData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening career data file: %w", err)
	}
	defer f.Close()
	return LoadCareerData(f)
}

func LoadCareerDataBytes(data []byte) (*CareerData, error) {
	var cd CareerData
	if err := json.Unmarshal(data, &cd); err != nil {
		return nil, fmt.Errorf("decoding career data: %w", err)
	}
	if err := validateCareerData(&cd); err != nil {
		return nil, err
	}
	return &cd, nil
}

func validateCareerData(cd *CareerData) error {
	for _, r := range cd.Roles {
		if r.Title == "" {
			return fmt.Errorf("career data: role with empty title")
		}
		if r.SalaryRange.Low < 0 || (r.SalaryRange.High != 0 && r.SalaryRange.High < r.SalaryRange.Low) {
			return fmt.Errorf("career data: role %q has invalid salary range %d-%d", r.Title, r.SalaryRange.Low, r.SalaryRange.High)
		}
	}
	return nil
}
