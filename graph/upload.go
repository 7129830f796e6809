package graph

import (
	"go-cuts-api/model"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// uploadScalar carries a multipart file into resolvers. Values only ever
// arrive through variables, injected by the HTTP handler from the multipart
// form; literals and serialization have no meaning for it.
var uploadScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Upload",
	Description: "A file attached to a multipart GraphQL request.",
	Serialize: func(value interface{}) interface{} {
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		if upload, ok := value.(*model.Upload); ok {
			return upload
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		return nil
	},
})
