package stats

import "github.com/iyhunko/inventory-console/internal/model"

// Summary is the full analysis report for one product snapshot.
type Summary struct {
	Count int

	MostExpensive  model.Product
	LeastExpensive model.Product

	MostCommonBrand  BrandCount
	LeastCommonBrand BrandCount

	Oldest model.Product
	Newest model.Product

	HighestQuantity model.Product
	LowestQuantity  model.Product

	Mean   float64
	Median float64
	// Modes holds every price sharing the maximum frequency; more than one
	// entry means the price distribution is multimodal.
	Modes []float64

	Variance float64
	StdDev   float64

	Q1  float64
	Q2  float64
	Q3  float64
	IQR float64
}

// Multimodal reports whether more than one price ties for the maximum frequency.
func (s *Summary) Multimodal() bool {
	return len(s.Modes) > 1
}

// Summarize computes the whole report over products. It fails only with
// ErrEmptyDataset; a multimodal price distribution is kept in Modes instead
// of discarding the rest of the report.
func Summarize(products []model.Product) (*Summary, error) {
	if len(products) == 0 {
		return nil, ErrEmptyDataset
	}

	s := &Summary{Count: len(products)}

	var err error
	if s.MostExpensive, err = MostExpensive(products); err != nil {
		return nil, err
	}
	if s.LeastExpensive, err = LeastExpensive(products); err != nil {
		return nil, err
	}
	if s.MostCommonBrand, err = MostCommonBrand(products); err != nil {
		return nil, err
	}
	if s.LeastCommonBrand, err = LeastCommonBrand(products); err != nil {
		return nil, err
	}
	if s.Oldest, err = Oldest(products); err != nil {
		return nil, err
	}
	if s.Newest, err = Newest(products); err != nil {
		return nil, err
	}
	if s.HighestQuantity, err = HighestQuantity(products); err != nil {
		return nil, err
	}
	if s.LowestQuantity, err = LowestQuantity(products); err != nil {
		return nil, err
	}

	prices := Prices(products)
	if s.Mean, err = Mean(prices); err != nil {
		return nil, err
	}
	if s.Median, err = Median(prices); err != nil {
		return nil, err
	}
	if s.Modes, err = Mode(prices); err != nil {
		return nil, err
	}
	if s.Variance, err = PopulationVariance(prices); err != nil {
		return nil, err
	}
	if s.StdDev, err = PopulationStdDev(prices); err != nil {
		return nil, err
	}
	if s.Q1, s.Q2, s.Q3, err = Quartiles(prices); err != nil {
		return nil, err
	}
	s.IQR = s.Q3 - s.Q1

	return s, nil
}
