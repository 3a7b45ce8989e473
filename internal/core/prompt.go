package core

import (
	"fmt"
	"strings"
)

const (
	// DefaultHairstyle is used when no hairstyle is requested
	DefaultHairstyle = "natural waves"
	// DefaultHairColor means "keep the current colour"; it adds no colour clause
	DefaultHairColor = "natural"
)

// WithDefaults fills empty options with the default hairstyle and colour
func (o StyleOptions) WithDefaults() StyleOptions {
	if strings.TrimSpace(o.Hairstyle) == "" {
		o.Hairstyle = DefaultHairstyle
	}
	if strings.TrimSpace(o.HairColor) == "" {
		o.HairColor = DefaultHairColor
	}
	return o
}

// BuildInstruction composes the natural-language edit instruction for the image provider
func BuildInstruction(opts StyleOptions) string {
	opts = opts.WithDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "Edit this photo so the person has a %s hairstyle", strings.TrimSpace(opts.Hairstyle))
	if !strings.EqualFold(strings.TrimSpace(opts.HairColor), DefaultHairColor) {
		fmt.Fprintf(&b, " with %s hair color", strings.TrimSpace(opts.HairColor))
	}
	b.WriteString(". Only change the hair. ")
	b.WriteString("Preserve the person's face, facial features, skin tone and expression exactly, ")
	b.WriteString("and keep the same pose, outfit and background. ")
	b.WriteString("The result must look like a realistic photograph of the same person.")

	return b.String()
}
