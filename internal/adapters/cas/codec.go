package cas

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
)

// encMode uses Core Deterministic Encoding so the same record always
// produces the same bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Identities and interned paths serialize through MarshalText.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("cas: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("cas: CBOR decoder initialization failed: " + err.Error())
	}
}

func encodeRecord(record *domain.CachedInfo) ([]byte, error) {
	data, err := encMode.Marshal(record)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode cached record")
	}
	return data, nil
}

func decodeRecord(data []byte) (*domain.CachedInfo, error) {
	var record domain.CachedInfo
	if err := decMode.Unmarshal(data, &record); err != nil {
		return nil, corruptRecord("decode failed", err)
	}
	return &record, nil
}
