package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// YAMLCatalog is the on-disk structure of a level file.
type YAMLCatalog struct {
	Title  string      `yaml:"title"`
	Levels []YAMLLevel `yaml:"levels" validate:"required,min=1,dive"`
}

// YAMLLevel is a single level in a level file.
type YAMLLevel struct {
	Title  string      `yaml:"title" validate:"required"`
	Images []YAMLImage `yaml:"images" validate:"min=2,max=6,dive"`
}

// YAMLImage is a single image entry in a level file.
type YAMLImage struct {
	Src         string `yaml:"src" validate:"required"`
	AI          bool   `yaml:"ai"`
	Explanation string `yaml:"explanation" validate:"required"`
	Hint        string `yaml:"hint,omitempty"`
}

// levelValidate checks decoded level files. Field names in errors use the
// yaml keys so messages point at what the author wrote.
var levelValidate *validator.Validate

func init() {
	levelValidate = validator.New(validator.WithRequiredStructEnabled())
	levelValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ParseYAML parses and validates a level file.
func ParseYAML(data []byte) (Source, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Source{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if err := levelValidate.Struct(yc); err != nil {
		return Source{}, translateValidation(err)
	}

	src := Source{
		Title:  yc.Title,
		Levels: make([]LevelSpec, 0, len(yc.Levels)),
	}
	for _, yl := range yc.Levels {
		images := make([]Image, 0, len(yl.Images))
		for _, yi := range yl.Images {
			images = append(images, Image{
				Src:         yi.Src,
				IsAI:        yi.AI,
				Explanation: yi.Explanation,
				Hint:        yi.Hint,
			})
		}
		src.Levels = append(src.Levels, LevelSpec{Title: yl.Title, Images: images})
	}

	// Catches what the struct tags can't, e.g. whitespace-only titles.
	if err := src.Validate(); err != nil {
		return Source{}, err
	}
	return src, nil
}

// MarshalYAML renders a source back into the level file format.
func (s Source) MarshalYAML() (any, error) {
	yc := YAMLCatalog{
		Title:  s.Title,
		Levels: make([]YAMLLevel, 0, len(s.Levels)),
	}
	for _, l := range s.Levels {
		yl := YAMLLevel{Title: l.Title}
		for _, img := range l.Images {
			yl.Images = append(yl.Images, YAMLImage{
				Src:         img.Src,
				AI:          img.IsAI,
				Explanation: img.Explanation,
				Hint:        img.Hint,
			})
		}
		yc.Levels = append(yc.Levels, yl)
	}
	return yc, nil
}

// translateValidation maps the first validator failure to a ValidationError.
func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidLevelConfiguration, err)
	}

	fe := verrs[0]
	code := CodeMissingField
	switch fe.Field() {
	case "images":
		if fe.Tag() == "min" || fe.Tag() == "max" {
			code = CodeInvalidLayout
		}
	case "levels":
		code = CodeNoLevels
	}

	field := fe.Namespace()
	if dot := strings.IndexByte(field, '.'); dot >= 0 {
		field = field[dot+1:]
	}

	return ValidationError{
		Code:    code,
		Message: fmt.Sprintf("%s failed %q check", field, fe.Tag()),
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
