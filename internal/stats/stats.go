// Package stats computes descriptive statistics over a product snapshot.
// Every function is pure: given the same input sequence it returns the same
// result, and all ties are broken by first occurrence in input order.
package stats

import (
	"errors"
	"math"
	"sort"

	"github.com/iyhunko/inventory-console/internal/model"
)

var (
	// ErrEmptyDataset is returned when a statistic is requested over zero records.
	ErrEmptyDataset = errors.New("statistics are undefined on an empty dataset")

	// ErrMultimodal is returned when more than one price shares the maximum frequency.
	ErrMultimodal = errors.New("mode is not unique")
)

// BrandCount pairs a brand with the number of products carrying it.
type BrandCount struct {
	Brand string
	Count int
}

// Prices extracts the price sequence from products, preserving input order.
func Prices(products []model.Product) []float64 {
	prices := make([]float64, len(products))
	for i, p := range products {
		prices[i] = p.Price
	}
	return prices
}

// MostExpensive returns the first product with the maximum price.
func MostExpensive(products []model.Product) (model.Product, error) {
	return pick(products, func(candidate, best model.Product) bool {
		return candidate.Price > best.Price
	})
}

// LeastExpensive returns the first product with the minimum price.
func LeastExpensive(products []model.Product) (model.Product, error) {
	return pick(products, func(candidate, best model.Product) bool {
		return candidate.Price < best.Price
	})
}

// Oldest returns the first product with the earliest creation time.
func Oldest(products []model.Product) (model.Product, error) {
	return pick(products, func(candidate, best model.Product) bool {
		return candidate.CreatedAt.Before(best.CreatedAt)
	})
}

// Newest returns the first product with the latest creation time.
func Newest(products []model.Product) (model.Product, error) {
	return pick(products, func(candidate, best model.Product) bool {
		return candidate.CreatedAt.After(best.CreatedAt)
	})
}

// HighestQuantity returns the first product with the maximum quantity.
func HighestQuantity(products []model.Product) (model.Product, error) {
	return pick(products, func(candidate, best model.Product) bool {
		return candidate.Quantity > best.Quantity
	})
}

// LowestQuantity returns the first product with the minimum quantity.
func LowestQuantity(products []model.Product) (model.Product, error) {
	return pick(products, func(candidate, best model.Product) bool {
		return candidate.Quantity < best.Quantity
	})
}

// pick scans products and keeps the first element for which better holds
// against the current best, so ties resolve to the earliest occurrence.
func pick(products []model.Product, better func(candidate, best model.Product) bool) (model.Product, error) {
	if len(products) == 0 {
		return model.Product{}, ErrEmptyDataset
	}
	best := products[0]
	for _, p := range products[1:] {
		if better(p, best) {
			best = p
		}
	}
	return best, nil
}

// MostCommonBrand returns the brand with the highest product count. Among
// brands sharing the maximum count the one seen first in input order wins.
func MostCommonBrand(products []model.Product) (BrandCount, error) {
	return pickBrand(products, func(candidate, best int) bool {
		return candidate > best
	})
}

// LeastCommonBrand returns the brand with the lowest product count, with the
// same first-seen tie-break as MostCommonBrand.
func LeastCommonBrand(products []model.Product) (BrandCount, error) {
	return pickBrand(products, func(candidate, best int) bool {
		return candidate < best
	})
}

// BrandCounts returns every brand with its product count, in the order the
// brands first appear in the input. An empty input yields an empty result.
func BrandCounts(products []model.Product) []BrandCount {
	counts := make(map[string]int, len(products))
	var order []string
	for _, p := range products {
		if _, seen := counts[p.Brand]; !seen {
			order = append(order, p.Brand)
		}
		counts[p.Brand]++
	}

	brands := make([]BrandCount, len(order))
	for i, brand := range order {
		brands[i] = BrandCount{Brand: brand, Count: counts[brand]}
	}
	return brands
}

func pickBrand(products []model.Product, better func(candidate, best int) bool) (BrandCount, error) {
	brands := BrandCounts(products)
	if len(brands) == 0 {
		return BrandCount{}, ErrEmptyDataset
	}

	best := brands[0]
	for _, candidate := range brands[1:] {
		if better(candidate.Count, best.Count) {
			best = candidate
		}
	}
	return best, nil
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median returns the middle element of the sorted values, or the average of
// the two middle elements when the count is even.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	sorted := sortedCopy(values)
	return medianSorted(sorted), nil
}

// Mode returns every value sharing the maximum frequency, sorted ascending.
// A single-element result means the dataset is unimodal; callers that need
// exactly one mode should treat len > 1 as the multimodal signal.
func Mode(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyDataset
	}

	counts := make(map[float64]int, len(values))
	maxCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > maxCount {
			maxCount = counts[v]
		}
	}

	var modes []float64
	for v, count := range counts {
		if count == maxCount {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)
	return modes, nil
}

// UniqueMode returns the single most frequent value, or ErrMultimodal when
// several values tie for the maximum frequency.
func UniqueMode(values []float64) (float64, error) {
	modes, err := Mode(values)
	if err != nil {
		return 0, err
	}
	if len(modes) > 1 {
		return 0, ErrMultimodal
	}
	return modes[0], nil
}

// PopulationVariance returns the mean of squared deviations from the mean,
// with divisor N (population, not sample).
func PopulationVariance(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values)), nil
}

// PopulationStdDev returns the square root of the population variance.
func PopulationStdDev(values []float64) (float64, error) {
	variance, err := PopulationVariance(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Quartiles returns Q1, Q2 and Q3 of values using the exclusive-median
// convention: the sorted data is split exactly in half, and for an odd count
// the overall median element belongs to neither half. A one-element dataset
// collapses all three quartiles to that value.
func Quartiles(values []float64) (q1, q2, q3 float64, err error) {
	if len(values) == 0 {
		return 0, 0, 0, ErrEmptyDataset
	}

	sorted := sortedCopy(values)
	q2 = medianSorted(sorted)

	half := len(sorted) / 2
	if half == 0 {
		return q2, q2, q2, nil
	}
	q1 = medianSorted(sorted[:half])
	q3 = medianSorted(sorted[len(sorted)-half:])
	return q1, q2, q3, nil
}

// IQR returns the interquartile range Q3 - Q1.
func IQR(values []float64) (float64, error) {
	q1, _, q3, err := Quartiles(values)
	if err != nil {
		return 0, err
	}
	return q3 - q1, nil
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}

// medianSorted expects a non-empty ascending slice.
func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
