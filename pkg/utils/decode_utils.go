package utils

import (
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeInto decodes generic map input into a typed config struct. Duration
// strings ("15m") and RFC3339 timestamps are parsed into their Go types.
// Keys absent from the input leave the corresponding fields untouched, so
// callers can prefill the target with defaults before decoding.
func DecodeInto(input map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
