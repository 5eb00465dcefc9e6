package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/pqgraph/core"
)

// tagPathBound is the struct-level rule keeping V·MaxWeight, an upper bound on
// any shortest path or spanning tree, below core.Infinity for float32 graphs.
const tagPathBound = "pathbound"

// benchConfig collects the command-line flags.
type benchConfig struct {
	SparseV   int     `validate:"min=2"`
	SparseE   int     `validate:"min=1"`
	DenseV    int     `validate:"min=2"`
	DenseE    int     `validate:"min=1"`
	MaxWeight float64 `validate:"gte=0"`
	Seed      uint64
	Phases    []string `validate:"min=1,dive,oneof=fixtures dijkstra prim"`
}

// defaultConfig mirrors the flag defaults; sizes are scaled down from the
// classic 75k/10M sparse and 10k/20M dense runs so a laptop finishes quickly.
func defaultConfig() benchConfig {
	return benchConfig{
		SparseV:   20000,
		SparseE:   200000,
		DenseV:    2000,
		DenseE:    1000000,
		MaxWeight: 1000,
		Seed:      1,
		Phases:    []string{"fixtures", "dijkstra", "prim"},
	}
}

// validateConfig checks the struct tags and the path bound, and returns one
// English message per violation, or nil when cfg is valid.
func validateConfig(cfg benchConfig) []error {
	validate := validator.New()
	validate.RegisterStructValidation(validatePathBound, benchConfig{})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	_ = validate.RegisterTranslation(tagPathBound, trans,
		func(ut ut.Translator) error {
			return ut.Add(tagPathBound, "{0} times the largest vertex count must stay below {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tagPathBound, fe.Field(), fe.Param())
			return t
		})

	if err := validate.Struct(cfg); err != nil {
		return translateError(err, trans)
	}
	return nil
}

// validatePathBound reports MaxWeight when a shortest path or spanning tree
// on the larger random graph could reach core.Infinity.
func validatePathBound(sl validator.StructLevel) {
	c := sl.Current().Interface().(benchConfig)
	limit := float64(core.Infinity[float32]())
	if c.MaxWeight > 0 && float64(max(c.SparseV, c.DenseV))*c.MaxWeight >= limit {
		sl.ReportError(c.MaxWeight, "MaxWeight", "MaxWeight", tagPathBound, fmt.Sprintf("%.0f", limit))
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

// hasPhase reports whether name was requested.
func (c benchConfig) hasPhase(name string) bool {
	for _, p := range c.Phases {
		if p == name {
			return true
		}
	}
	return false
}

func (c benchConfig) String() string {
	return fmt.Sprintf("sparse V=%d E=%d, dense V=%d E=%d, maxWeight=%g, seed=%d, phases=%v",
		c.SparseV, c.SparseE, c.DenseV, c.DenseE, c.MaxWeight, c.Seed, c.Phases)
}
