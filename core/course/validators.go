package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

var (
	materialTypeTag  = "materialtype"
	materialTypeText = "material type must be one of: text, video, pdf, link"
)

func init() {
	_ = core.Validate.RegisterValidation(materialTypeTag, materialTypeValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, materialTypeTag, materialTypeText)
}

// materialTypeValidation checks that the provided type is a known MaterialType.
func materialTypeValidation(fl validator.FieldLevel) bool {
	if typ, ok := fl.Field().Interface().(MaterialType); ok {
		return typ.Valid()
	}
	return false
}
