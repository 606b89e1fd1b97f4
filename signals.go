package coax

import (
	"context"
	"reflect"

	"github.com/zoobzio/capitan"
)

// Signals for coercion policy events. Resolution itself is silent
// unless the decision falls through to a legacy compatibility flag;
// that case is worth watching because it marks configuration a caller
// has not yet migrated to explicit policies.
var (
	SignalStoreCreated   = capitan.NewSignal("coax.store.created", "Policy store instantiated")
	SignalStoreForked    = capitan.NewSignal("coax.store.forked", "Policy store deep-copied")
	SignalPolicyCreated  = capitan.NewSignal("coax.policy.created", "Policy record allocated")
	SignalProfileApplied = capitan.NewSignal("coax.profile.applied", "Profile applied to a store")
	SignalResolveLegacy  = capitan.NewSignal("coax.resolve.legacy", "Coercion decided by a legacy compatibility flag")
)

// Keys for typed event data.
var (
	KeyAction      = capitan.NewStringKey("action")
	KeyTarget      = capitan.NewStringKey("target")
	KeyShape       = capitan.NewStringKey("shape")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyRule        = capitan.NewStringKey("rule")
	KeyTargetCount = capitan.NewIntKey("target_count")
	KeyTypeCount   = capitan.NewIntKey("type_count")
	KeyError       = capitan.NewErrorKey("error")
)

// emitStoreCreated emits an event when a store is created.
func emitStoreCreated(ctx context.Context, defaultAction Action) {
	capitan.Emit(ctx, SignalStoreCreated,
		KeyAction.Field(defaultAction.String()),
	)
}

// emitStoreForked emits an event when a store is deep-copied.
func emitStoreForked(ctx context.Context, targets, types int) {
	capitan.Emit(ctx, SignalStoreForked,
		KeyTargetCount.Field(targets),
		KeyTypeCount.Field(types),
	)
}

// emitTargetPolicyCreated emits an event when a per-target record is
// first allocated.
func emitTargetPolicyCreated(ctx context.Context, t Target) {
	capitan.Emit(ctx, SignalPolicyCreated,
		KeyTarget.Field(t.String()),
	)
}

// emitTypePolicyCreated emits an event when a per-type record is
// first allocated.
func emitTypePolicyCreated(ctx context.Context, rt reflect.Type) {
	capitan.Emit(ctx, SignalPolicyCreated,
		KeyTypeName.Field(rt.String()),
	)
}

// emitProfileApplied emits an event when a profile is applied.
func emitProfileApplied(ctx context.Context, targets int, err error) {
	fields := []capitan.Field{
		KeyTargetCount.Field(targets),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalProfileApplied, fields...)
	} else {
		capitan.Emit(ctx, SignalProfileApplied, fields...)
	}
}

// emitResolveLegacy emits an event when a resolution is decided by a
// legacy compatibility flag rather than an explicit policy.
func emitResolveLegacy(ctx context.Context, target Target, rt reflect.Type, shape Shape, rule string, act Action) {
	fields := []capitan.Field{
		KeyTarget.Field(target.String()),
		KeyShape.Field(shape.String()),
		KeyRule.Field(rule),
		KeyAction.Field(act.String()),
	}
	if rt != nil {
		fields = append(fields, KeyTypeName.Field(rt.String()))
	}
	capitan.Emit(ctx, SignalResolveLegacy, fields...)
}
