package handler

import (
	"encoding/json"
	"go-cuts-api/common"
	"go-cuts-api/graph"
	"go-cuts-api/model"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"
)

const maxUploadMemory = 32 << 20 // 32 MiB

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler serves the single API endpoint. It accepts standard JSON
// POST bodies and multipart upload requests (operations + map + file parts,
// the graphql-multipart-request-spec shape the web client sends).
type GraphQLHandler struct {
	schema graphql.Schema
}

func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		common.NewAppError(http.StatusMethodNotAllowed, "Only POST is supported on /graphql", nil).Send(w)
		return
	}

	var req *graphqlRequest
	var closers []io.Closer

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		var appErr *common.AppError
		req, closers, appErr = parseMultipartRequest(r)
		if appErr != nil {
			appErr.Send(w)
			return
		}
	default:
		req = &graphqlRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			common.NewAppError(http.StatusBadRequest, "Invalid GraphQL request body", err).Send(w)
			return
		}
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	ctx := graph.WithHTTP(r.Context(), w, r)
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(result)
}

// parseMultipartRequest decodes an upload request: the "operations" field is
// the GraphQL request, the "map" field routes each file part into the
// variables it belongs to.
func parseMultipartRequest(r *http.Request) (*graphqlRequest, []io.Closer, *common.AppError) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, nil, common.NewAppError(http.StatusBadRequest, "Invalid multipart request", err)
	}

	req := &graphqlRequest{}
	if err := json.Unmarshal([]byte(r.FormValue("operations")), req); err != nil {
		return nil, nil, common.NewAppError(http.StatusBadRequest, "Invalid operations field", err)
	}

	fileMap := map[string][]string{}
	if err := json.Unmarshal([]byte(r.FormValue("map")), &fileMap); err != nil {
		return nil, nil, common.NewAppError(http.StatusBadRequest, "Invalid map field", err)
	}

	var closers []io.Closer
	for part, paths := range fileMap {
		headers := r.MultipartForm.File[part]
		if len(headers) == 0 {
			continue
		}
		header := headers[0]

		file, err := header.Open()
		if err != nil {
			return nil, closers, common.NewAppError(http.StatusBadRequest, "Could not read uploaded file", err)
		}
		closers = append(closers, file)

		upload := &model.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
		for _, path := range paths {
			setVariable(req, path, upload)
		}
	}

	return req, closers, nil
}

// setVariable places an upload at a dotted path like "variables.file".
func setVariable(req *graphqlRequest, path string, upload *model.Upload) {
	parts := strings.Split(path, ".")
	if len(parts) < 2 || parts[0] != "variables" {
		return
	}
	if req.Variables == nil {
		req.Variables = map[string]interface{}{}
	}

	current := req.Variables
	for _, key := range parts[1 : len(parts)-1] {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			current[key] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = upload
}
