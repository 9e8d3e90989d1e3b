package util

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyPrint writes an indented JSON representation of a given value
func PrettyPrint(w io.Writer, val interface{}) error {
	buf, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "failed to marshal value")
	}

	_, err = fmt.Fprintf(w, "%s", pretty.Pretty(buf))

	return err
}
