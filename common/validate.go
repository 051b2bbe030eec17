package common

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// Report validation failures by json field name, so error bodies can
	// name the offending request property.
	v.RegisterTagNameFunc(func(fd reflect.StructField) string {
		name := strings.SplitN(fd.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
