package hcl_adapter

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// newEvalContext returns the variables and functions visible to expressions
// in a config file:
//
//	config_dir          absolute directory of the file being loaded
//	path_join(parts...) joins path elements with the OS separator
func newEvalContext(configDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(configDir),
		},
		Functions: map[string]function.Function{
			"path_join": pathJoinFunc,
		},
	}
}

var pathJoinFunc = function.New(&function.Spec{
	VarParam: &function.Parameter{
		Name: "parts",
		Type: cty.String,
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, arg.AsString())
		}
		return cty.StringVal(filepath.Join(parts...)), nil
	},
})
