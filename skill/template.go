package skill

import (
	"github.com/hupe1980/skcontext/core"
	"github.com/hupe1980/skcontext/internal/util"
)

// NewTemplateFunction returns a function that renders tmpl (text/template
// syntax, variables addressed as {{.name}}) against the context variables and
// returns a new context whose "input" is the rendered text.
//
// Example:
//
//	greet := skill.NewTemplateFunction("text", "greet", "Greets the user",
//	  `Hello {{default "there" .name}}, you said: {{.input}}`)
func NewTemplateFunction(skillName, name, description, tmpl string, parameters ...Parameter) *NativeFunction {
	return NewNativeFunction(skillName, name, description,
		func(ctx core.ExecutionContext) (core.ExecutionContext, error) {
			out, err := util.RenderTemplate(tmpl, ctx.Variables().AsMap())
			if err != nil {
				return nil, err
			}
			return ctx.Update(out), nil
		},
		parameters...,
	)
}
