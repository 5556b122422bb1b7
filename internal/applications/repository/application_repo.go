package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/InternFinder-SIH/internfinder-backend/internal/applications/domain"
)

const applicationsCollection = "applications"

// ApplicationRepository stores application records in a Firestore collection.
// The document id doubles as the record id and is assigned by Firestore on
// create, never by the caller.
type ApplicationRepository struct {
	client *firestore.Client
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(client *firestore.Client) *ApplicationRepository {
	return &ApplicationRepository{client: client}
}

// Create persists a new record and fills in the generated id.
func (r *ApplicationRepository) Create(ctx context.Context, rec *domain.ApplicationRecord) (*domain.ApplicationRecord, error) {
	docRef, _, err := r.client.Collection(applicationsCollection).Add(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("add application: %w", err)
	}
	rec.ID = docRef.ID
	return rec, nil
}

// ListByUser returns every record for the user, in no particular order.
// A user with no records gets an empty slice, not an error.
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]domain.ApplicationRecord, error) {
	iter := r.client.Collection(applicationsCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	out := make([]domain.ApplicationRecord, 0, 8)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list applications: %w", err)
		}

		var rec domain.ApplicationRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decode application %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}

// DeleteWhere removes every record matching all three fields and returns the
// number deleted. Zero matches is ErrRecordNotFound. The deletes go through a
// single batch commit; there is no isolation from concurrent creates.
func (r *ApplicationRepository) DeleteWhere(ctx context.Context, userID, internshipID string, status domain.Status) (int, error) {
	iter := r.client.Collection(applicationsCollection).
		Where("userId", "==", userID).
		Where("internshipId", "==", internshipID).
		Where("status", "==", string(status)).
		Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("query applications: %w", err)
		}
		refs = append(refs, doc.Ref)
	}

	if len(refs) == 0 {
		return 0, domain.ErrRecordNotFound
	}

	batch := r.client.Batch()
	for _, ref := range refs {
		batch.Delete(ref)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return 0, fmt.Errorf("batch delete applications: %w", err)
	}
	return len(refs), nil
}
