package model

import "io"

// Upload is a file attached to a multipart GraphQL request, handed to
// resolvers through the Upload scalar.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
