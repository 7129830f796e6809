package graph

import (
	"errors"
	"go-cuts-api/model"
	"go-cuts-api/service"
	"net/http"

	"github.com/graphql-go/graphql"
)

var signUpInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SignUpInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var loginInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"emailOrUsername": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var cutReviewInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateOrUpdateCutReviewInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"cutId":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"contents": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

// NewSchema wires every query and mutation of the API to the resolver's
// services.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	directorType := r.directorType()
	userType := r.userType()
	filmType := r.filmType(directorType)
	cutType := r.cutType(filmType)
	cutReviewType := r.cutReviewType(userType)
	paginatedFilmsType := r.paginatedFilmsType(filmType)
	fieldErrorType := r.fieldErrorType()
	loginResponseType := r.loginResponseType(userType, fieldErrorType)
	refreshResponseType := r.refreshResponseType()

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"films": &graphql.Field{
				Type: graphql.NewNonNull(paginatedFilmsType),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 6},
					"cursor": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Films.Films(p.Args["limit"].(int), p.Args["cursor"].(int)), nil
				},
			},
			"film": &graphql.Field{
				Type: filmType,
				Args: graphql.FieldConfigArgument{
					"filmId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					film := r.Films.Film(p.Args["filmId"].(int))
					if film == nil {
						return nil, nil
					}
					return film, nil
				},
			},
			"cuts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(cutType))),
				Args: graphql.FieldConfigArgument{
					"filmId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Cuts.Cuts(p.Args["filmId"].(int)), nil
				},
			},
			"cut": &graphql.Field{
				Type: cutType,
				Args: graphql.FieldConfigArgument{
					"cutId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cut := r.Cuts.Cut(p.Args["cutId"].(int))
					if cut == nil {
						return nil, nil
					}
					return cut, nil
				},
			},
			"cutReviews": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(cutReviewType))),
				Args: graphql.FieldConfigArgument{
					"cutId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"take":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 2},
					"skip":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewerID := 0
					if claims := IdentityFrom(p.Context); claims != nil {
						viewerID = claims.UserID
					}
					return r.Reviews.ListForCut(viewerID, p.Args["cutId"].(int),
						p.Args["take"].(int), p.Args["skip"].(int))
				},
			},
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireIdentity(p.Context)
					if err != nil {
						return nil, err
					}
					user, err := r.Auth.Me(claims.UserID)
					if err != nil {
						return nil, err
					}
					if user == nil {
						return nil, nil
					}
					return user, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUp": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"signUpInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signUpInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := signUpInputFromArgs(p.Args["signUpInput"].(map[string]interface{}))
					user, fieldErrors, err := r.Auth.SignUp(input)
					if err != nil {
						return nil, err
					}
					if fieldErrors != nil {
						return nil, errBadUserInput(fieldErrors)
					}
					return user, nil
				},
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(loginResponseType),
				Args: graphql.FieldConfigArgument{
					"loginInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := loginInputFromArgs(p.Args["loginInput"].(map[string]interface{}))
					resp, refreshToken, err := r.Auth.Login(input)
					if err != nil {
						return nil, err
					}
					if resp.User != nil {
						if w := ResponseWriterFrom(p.Context); w != nil {
							http.SetCookie(w, r.Auth.NewRefreshCookie(refreshToken))
						}
					}
					return resp, nil
				},
			},
			"logout": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireIdentity(p.Context)
					if err != nil {
						return nil, err
					}
					if err := r.Auth.Logout(claims.UserID); err != nil {
						return false, err
					}
					if w := ResponseWriterFrom(p.Context); w != nil {
						http.SetCookie(w, r.Auth.NewClearedRefreshCookie())
					}
					return true, nil
				},
			},
			"refreshAccessToken": &graphql.Field{
				Type: refreshResponseType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					presented := ""
					if req := RequestFrom(p.Context); req != nil {
						if cookie, err := req.Cookie(service.RefreshCookieName); err == nil {
							presented = cookie.Value
						}
					}

					accessToken, refreshToken, err := r.Auth.RefreshAccessToken(presented)
					if err != nil {
						if errors.Is(err, service.ErrRenewalRejected) {
							return nil, nil
						}
						return nil, err
					}

					if w := ResponseWriterFrom(p.Context); w != nil {
						http.SetCookie(w, r.Auth.NewRefreshCookie(refreshToken))
					}
					return &model.RefreshAccessTokenResponse{AccessToken: accessToken}, nil
				},
			},
			"vote": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"cutId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireIdentity(p.Context)
					if err != nil {
						return nil, err
					}
					return r.Cuts.Vote(claims.UserID, p.Args["cutId"].(int))
				},
			},
			"createOrUpdateCutReview": &graphql.Field{
				Type: cutReviewType,
				Args: graphql.FieldConfigArgument{
					"cutReviewInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(cutReviewInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireIdentity(p.Context)
					if err != nil {
						return nil, err
					}
					input := reviewInputFromArgs(p.Args["cutReviewInput"].(map[string]interface{}))
					review, fieldErrors, err := r.Reviews.CreateOrUpdate(claims.UserID, input)
					if err != nil {
						return nil, err
					}
					if fieldErrors != nil {
						return nil, errBadUserInput(fieldErrors)
					}
					return review, nil
				},
			},
			"deleteReview": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireIdentity(p.Context)
					if err != nil {
						return nil, err
					}
					return r.Reviews.Delete(claims.UserID, p.Args["id"].(int))
				},
			},
			"uploadProfileImage": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"file": &graphql.ArgumentConfig{Type: graphql.NewNonNull(uploadScalar)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims, err := requireIdentity(p.Context)
					if err != nil {
						return nil, err
					}
					upload, ok := p.Args["file"].(*model.Upload)
					if !ok || upload == nil {
						return false, nil
					}
					return r.Uploads.UploadProfileImage(p.Context, claims.UserID, upload)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
