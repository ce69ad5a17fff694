//go:build !cgo

package hal

import "errors"

func RunGL(_ func(HAL) App, _ WindowConfig) error {
	return errors.New("gl mode requires cgo (build/run with CGO_ENABLED=1)")
}
