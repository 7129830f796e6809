package graph

import (
	"go-cuts-api/common"
	"go-cuts-api/model"

	"github.com/graphql-go/graphql"
)

// Entity object types. Every field has an explicit resolve function against
// its typed source; viewer-dependent fields (isVoted, isMine) read the
// request identity from the context.

func (r *Resolver) directorType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Director",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Director).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Director).Name, nil
				},
			},
		},
	})
}

func (r *Resolver) userType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).ID, nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).Username, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).Email, nil
				},
			},
			"profileImage": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).ProfileImage, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).UpdatedAt, nil
				},
			},
		},
	})
}

func (r *Resolver) filmType(directorType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Film",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).ID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).Title, nil
				},
			},
			"subtitle": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).Subtitle, nil
				},
			},
			"genre": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).Genre, nil
				},
			},
			"runningTime": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).Runtime, nil
				},
			},
			"release": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).Release, nil
				},
			},
			"posterImg": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).PosterImg, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Film).Description, nil
				},
			},
			"director": &graphql.Field{
				Type: graphql.NewNonNull(directorType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Films.DirectorForFilm(p.Source.(*model.Film)), nil
				},
			},
		},
	})
}

func (r *Resolver) cutType(filmType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Cut",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Cut).ID, nil
				},
			},
			"src": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Cut).Src, nil
				},
			},
			"filmId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.Cut).FilmID, nil
				},
			},
			"film": &graphql.Field{
				Type: filmType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Cuts.FilmForCut(p.Source.(*model.Cut)), nil
				},
			},
			"votesCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Cuts.VotesCount(p.Source.(*model.Cut).ID)
				},
			},
			"isVoted": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					claims := IdentityFrom(p.Context)
					if claims == nil {
						return false, nil
					}
					return r.Cuts.IsVoted(claims.UserID, p.Source.(*model.Cut).ID)
				},
			},
		},
	})
}

func (r *Resolver) cutReviewType(userType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "CutReview",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.CutReview).ID, nil
				},
			},
			"cutId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.CutReview).CutID, nil
				},
			},
			"contents": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.CutReview).Contents, nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Reviews.UserForReview(p.Source.(*model.CutReview))
				},
			},
			"isMine": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewerID := 0
					if claims := IdentityFrom(p.Context); claims != nil {
						viewerID = claims.UserID
					}
					return r.Reviews.IsMine(p.Source.(*model.CutReview), viewerID), nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.CutReview).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.CutReview).UpdatedAt, nil
				},
			},
		},
	})
}

func (r *Resolver) paginatedFilmsType(filmType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "PaginatedFilms",
		Fields: graphql.Fields{
			"films": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(filmType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.PaginatedFilms).Films, nil
				},
			},
			"cursor": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cursor := p.Source.(*model.PaginatedFilms).Cursor
					if cursor == nil {
						return nil, nil
					}
					return *cursor, nil
				},
			},
		},
	})
}

func (r *Resolver) fieldErrorType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "FieldError",
		Fields: graphql.Fields{
			"field": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(common.FieldError).Field, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(common.FieldError).Message, nil
				},
			},
		},
	})
}

func (r *Resolver) loginResponseType(userType, fieldErrorType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginResponse",
		Fields: graphql.Fields{
			"errors": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(fieldErrorType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					resp := p.Source.(*model.LoginResponse)
					if len(resp.Errors) == 0 {
						return nil, nil
					}
					return resp.Errors, nil
				},
			},
			"user": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					resp := p.Source.(*model.LoginResponse)
					if resp.User == nil {
						return nil, nil
					}
					return resp.User, nil
				},
			},
			"accessToken": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.LoginResponse).AccessToken, nil
				},
			},
		},
	})
}

func (r *Resolver) refreshResponseType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RefreshAccessTokenResponse",
		Fields: graphql.Fields{
			"accessToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.RefreshAccessTokenResponse).AccessToken, nil
				},
			},
		},
	})
}
