// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-threat-sync/models"
)

// Field names accepted by [ChangeSetValidator].
const (
	FieldRevision = "revision"
	FieldElements = "elements"
	FieldDisjoint = "disjoint"
)

// ChangeSetUpdate is a changeset received for Key while the local dataset
// is at KnownRevision.
type ChangeSetUpdate struct {
	Key           models.DataKey
	KnownRevision int64
	ChangeSet     models.ChangeSet
}

// ChangeSetValidator checks a [ChangeSetUpdate] before it is applied:
//   - the revision is not negative and, unless the changeset replaces the
//     dataset, not older than the known revision;
//   - every element has the shape of the data kind;
//   - Insert and Remove are disjoint.
type ChangeSetValidator struct{}

func NewChangeSetValidator() Validator {
	return &ChangeSetValidator{}
}

func (v *ChangeSetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case ChangeSetUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *ChangeSetUpdate:
		return v.validateUpdate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ChangeSetValidator) validateUpdate(_ context.Context, update ChangeSetUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRevision, FieldElements, FieldDisjoint}
	}

	cs := update.ChangeSet
	for _, f := range fields {
		switch f {
		case FieldRevision:
			if cs.Revision < 0 {
				return fmt.Errorf("%w: %d", ErrNegativeRevision, cs.Revision)
			}
			if !cs.Replace && cs.Revision < update.KnownRevision {
				return fmt.Errorf("%w: got %d, known %d", ErrStaleRevision, cs.Revision, update.KnownRevision)
			}
		case FieldElements:
			if err := validateElements(update.Key.DataKind, cs.Insert); err != nil {
				return fmt.Errorf("insert: %w", err)
			}
			if err := validateElements(update.Key.DataKind, cs.Remove); err != nil {
				return fmt.Errorf("remove: %w", err)
			}
		case FieldDisjoint:
			if err := validateDisjoint(cs.Insert, cs.Remove); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}
