package cipherstring

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for processor events.
var (
	SignalProcessorCreated = capitan.NewSignal("cipherstring.processor.created", "Processor instantiated")
	SignalReceiveStart     = capitan.NewSignal("cipherstring.receive.start", "Receive operation beginning")
	SignalReceiveComplete  = capitan.NewSignal("cipherstring.receive.complete", "Receive operation finished")
	SignalLoadStart        = capitan.NewSignal("cipherstring.load.start", "Load operation beginning")
	SignalLoadComplete     = capitan.NewSignal("cipherstring.load.complete", "Load operation finished")
	SignalStoreStart       = capitan.NewSignal("cipherstring.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("cipherstring.store.complete", "Store operation finished")
	SignalFieldRejected    = capitan.NewSignal("cipherstring.field.rejected", "Envelope field failed verification")
)

// Keys for typed event data.
var (
	KeyContentType   = capitan.NewStringKey("content_type")
	KeyTypeName      = capitan.NewStringKey("type_name")
	KeyField         = capitan.NewStringKey("field")
	KeyReason        = capitan.NewStringKey("reason")
	KeyShape         = capitan.NewStringKey("shape")
	KeySize          = capitan.NewIntKey("size")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
	KeyVerifiedCount = capitan.NewIntKey("verified_count")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReceiveStart emits an event when receive begins.
func emitReceiveStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalReceiveStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReceiveComplete emits an event when receive finishes.
func emitReceiveComplete(ctx context.Context, contentType, typeName string, duration time.Duration, verified int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyVerifiedCount.Field(verified),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReceiveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReceiveComplete, fields...)
	}
}

// emitLoadStart emits an event when load begins.
func emitLoadStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, verified int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyVerifiedCount.Field(verified),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}

// emitStoreStart emits an event when store begins.
func emitStoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, verified int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyVerifiedCount.Field(verified),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

// emitFieldRejected emits an event for a field that failed verification.
// Only the masked shape of the value is attached.
func emitFieldRejected(ctx context.Context, typeName, field, reason, shape string) {
	capitan.Emit(ctx, SignalFieldRejected,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyReason.Field(reason),
		KeyShape.Field(shape),
	)
}
