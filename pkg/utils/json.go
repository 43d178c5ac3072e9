package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// PrettyJson serializa in com indentação; []byte é reindentado
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := jsoniter.Unmarshal(raw, &decoded); err != nil {
			logrus.WithError(err).Warn("PrettyJson: entrada não é JSON válido")
			return string(raw)
		}
		in = decoded
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("PrettyJson: erro ao serializar")
		return ""
	}

	return string(out)
}
