package graph

import (
	"go-cuts-api/model"
	"go-cuts-api/service"
)

// Resolver bundles the services the schema's field-computation functions
// dispatch to. One explicit resolver function per field; no reflection
// wiring.
type Resolver struct {
	Auth    *service.AuthService
	Films   *service.FilmService
	Cuts    *service.CutService
	Reviews *service.ReviewService
	Uploads *service.UploadService
}

func stringArg(input map[string]interface{}, key string) string {
	value, _ := input[key].(string)
	return value
}

func intArg(input map[string]interface{}, key string) int {
	value, _ := input[key].(int)
	return value
}

func signUpInputFromArgs(input map[string]interface{}) model.SignUpInput {
	return model.SignUpInput{
		Email:    stringArg(input, "email"),
		Username: stringArg(input, "username"),
		Password: stringArg(input, "password"),
	}
}

func loginInputFromArgs(input map[string]interface{}) model.LoginInput {
	return model.LoginInput{
		EmailOrUsername: stringArg(input, "emailOrUsername"),
		Password:        stringArg(input, "password"),
	}
}

func reviewInputFromArgs(input map[string]interface{}) model.CreateOrUpdateCutReviewInput {
	return model.CreateOrUpdateCutReviewInput{
		CutID:    intArg(input, "cutId"),
		Contents: stringArg(input, "contents"),
	}
}
