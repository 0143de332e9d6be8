package models

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	apperrors "kite-mcp-gateway/internal/errors"
)

// wholeNumberHook rejects fractional input bound for integer fields.
// Weak typing turns float64 into int by truncation, which would
// silently change a trading quantity; a fractional quantity is a bad
// request, not 10.
func wholeNumberHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	kind := to.Kind()
	if kind == reflect.Ptr {
		kind = to.Elem().Kind()
	}
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f := data.(float64)
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("must be a whole number, got %v", f)
		}
	}
	return data, nil
}

// decode maps an untyped argument payload onto a request struct. Weak
// typing is on because JSON transports hand every number over as
// float64. Decoding performs no validation beyond shape; each Decode*
// constructor runs the request's Validate before returning it.
func decode(args map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		DecodeHook:       mapstructure.DecodeHookFuncType(wholeNumberHook),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return apperrors.NewValidationError(apperrors.KindOutOfRange, "", nil, err.Error())
	}
	return nil
}

// DecodePlaceOrderRequest builds and validates a PlaceOrderRequest.
func DecodePlaceOrderRequest(args map[string]interface{}) (*PlaceOrderRequest, error) {
	var req PlaceOrderRequest
	if err := decode(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeModifyOrderRequest builds and validates a ModifyOrderRequest.
func DecodeModifyOrderRequest(args map[string]interface{}) (*ModifyOrderRequest, error) {
	var req ModifyOrderRequest
	if err := decode(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeConvertPositionRequest builds and validates a ConvertPositionRequest.
func DecodeConvertPositionRequest(args map[string]interface{}) (*ConvertPositionRequest, error) {
	var req ConvertPositionRequest
	if err := decode(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodePlaceGTTRequest builds and validates a PlaceGTTRequest.
func DecodePlaceGTTRequest(args map[string]interface{}) (*PlaceGTTRequest, error) {
	var req PlaceGTTRequest
	if err := decode(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeModifyGTTRequest builds and validates a ModifyGTTRequest.
func DecodeModifyGTTRequest(args map[string]interface{}) (*ModifyGTTRequest, error) {
	var req ModifyGTTRequest
	if err := decode(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeBasketMarginRequest builds and validates a BasketMarginRequest.
func DecodeBasketMarginRequest(args map[string]interface{}) (*BasketMarginRequest, error) {
	var req BasketMarginRequest
	if err := decode(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeHistoricalDataRequest builds and validates a HistoricalDataRequest.
func DecodeHistoricalDataRequest(args map[string]interface{}) (*HistoricalDataRequest, error) {
	var req HistoricalDataRequest
	if err := decode(args, &req); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}
