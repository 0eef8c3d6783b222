package item

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/raiddata/internal/classify"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/source"
)

// AugmentStatsError lists every augment field that was missing or invalid
type AugmentStatsError struct {
	ItemID  string
	Missing []string
}

func (e *AugmentStatsError) Error() string {
	return fmt.Sprintf(ErrFmtAugmentStatsMissing, e.ItemID, strings.Join(e.Missing, ", "))
}

func (e *AugmentStatsError) Unwrap() error {
	return domain.ErrStrictValidation
}

// augmentInput is the augment block after shield normalization. Field order
// is the order missing fields are reported in. Slot counts must fit the
// integer columns.
type augmentInput struct {
	BackpackSlots       *float64            `json:"backpack_slots" validate:"required,gte=-2147483648,lte=2147483647"`
	SafePocketSlots     *float64            `json:"safe_pocket_slots" validate:"required,gte=-2147483648,lte=2147483647"`
	QuickUseSlots       *float64            `json:"quick_use_slots" validate:"required,gte=-2147483648,lte=2147483647"`
	WeaponSlots         *float64            `json:"weapon_slots" validate:"required,gte=-2147483648,lte=2147483647"`
	WeightLimit         *float64            `json:"weight_limit" validate:"required"`
	ShieldCompatibility []domain.ShieldType `json:"shield_compatibility" validate:"min=1"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	return v
}

func numberPtr(n source.Number) *float64 {
	if !n.Valid || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return nil
	}
	v := n.Value
	return &v
}

// augmentGear builds the strict gear payload of an augment record
func (in *Ingestor) augmentGear(rec *source.Item) (*domain.Gear, error) {
	var a source.Augment
	if rec.Augment != nil {
		a = *rec.Augment
	}
	input := augmentInput{
		BackpackSlots:       numberPtr(a.BackpackSlots),
		SafePocketSlots:     numberPtr(a.SafePocketSize),
		QuickUseSlots:       numberPtr(a.QuickUseSlots),
		WeaponSlots:         numberPtr(a.WeaponSlots),
		WeightLimit:         numberPtr(a.WeightLimit),
		ShieldCompatibility: classify.ShieldCompatibility(a.SupportedShieldTypes),
	}

	if err := in.validate.Struct(input); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, AugmentFieldPrefix+fe.Field())
		}
		return nil, &AugmentStatsError{ItemID: rec.ID.Value, Missing: missing}
	}

	return &domain.Gear{
		Category: domain.GearCategoryAugment,
		Stats: domain.AugmentStats{
			BackpackSlots:        int(math.Trunc(*input.BackpackSlots)),
			SafePocketSize:       int(math.Trunc(*input.SafePocketSlots)),
			QuickUseSlots:        int(math.Trunc(*input.QuickUseSlots)),
			WeaponSlots:          int(math.Trunc(*input.WeaponSlots)),
			WeightLimit:          *input.WeightLimit,
			SupportedShieldTypes: input.ShieldCompatibility,
		},
	}, nil
}
