package infra

import "io"

type ImageStoreInterface interface {
	Save(originalName string, src io.Reader) (string, error)
}

var _ ImageStoreInterface = (*ImageStore)(nil)
