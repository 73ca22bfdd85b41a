package plan

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/expdesign/balance"
)

// ErrInvalidPlan wraps every structural problem found in a plan document.
var ErrInvalidPlan = errors.New("plan: invalid plan")

// Plan is one balancing job.
type Plan struct {
	Name     string              `yaml:"name" json:"name" validate:"required"`
	Shuffle  balance.ShuffleType `yaml:"shuffle" json:"shuffle" validate:"shuffle"`
	Trials   int                 `yaml:"trials" json:"trials" validate:"gt=0"`
	Sessions int                 `yaml:"sessions" json:"sessions" validate:"gt=0"`
	Seed     *int64              `yaml:"seed,omitempty" json:"seed,omitempty"`
	Start    *int                `yaml:"start,omitempty" json:"start,omitempty" validate:"omitempty,gte=0"`

	// Exactly one of Conditions and Nested is set.
	Conditions []string          `yaml:"conditions,omitempty" json:"conditions,omitempty" validate:"required_without=Nested,excluded_with=Nested,omitempty,unique,dive,required"`
	Nested     []NestedCondition `yaml:"nested,omitempty" json:"nested,omitempty" validate:"required_without=Conditions,omitempty,unique=Label,dive"`
}

// NestedCondition is a top-level condition with its sub-condition codes.
type NestedCondition struct {
	Label string   `yaml:"label" json:"label" validate:"required"`
	Sub   []string `yaml:"sub" json:"sub" validate:"required,min=1,unique,dive,required"`
}

// IsNested reports whether p balances a nested condition set.
func (p *Plan) IsNested() bool {
	return len(p.Nested) > 0
}

// planValidate is shared by all plans; it carries the "shuffle" rule.
var planValidate *validator.Validate

func init() {
	planValidate = validator.New()
	_ = planValidate.RegisterValidation("shuffle", validateShuffle)
}

// validateShuffle accepts only the defined balance.ShuffleType values.
func validateShuffle(fl validator.FieldLevel) bool {
	return balance.ShuffleType(fl.Field().Int()).Valid()
}

// Validate checks p structurally. Balancing preconditions that depend on
// the counts (set multiples, nested divisibility) are left to Run, which
// reports them as balance.ErrInvalidArgument.
func (p *Plan) Validate() error {
	if err := planValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPlan, err)
	}
	return nil
}

// Parse decodes and validates a YAML plan. Unknown keys are rejected.
func Parse(data []byte) (*Plan, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decode: %s", ErrInvalidPlan, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads and parses the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// options translates the plan's seed and start into balance options.
func (p *Plan) options() []balance.Option {
	var opts []balance.Option
	if p.Seed != nil {
		opts = append(opts, balance.WithSeed(*p.Seed))
	}
	if p.Start != nil {
		opts = append(opts, balance.WithStartPos(*p.Start))
	}
	return opts
}

// nestedConditions converts the plan's nested set for package balance.
func (p *Plan) nestedConditions() []balance.Nested[string, string] {
	out := make([]balance.Nested[string, string], len(p.Nested))
	for i, n := range p.Nested {
		out[i] = balance.Nested[string, string]{Label: n.Label, Sub: n.Sub}
	}
	return out
}
