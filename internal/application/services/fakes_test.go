package services

import (
	"context"
	"sync"

	"fairgrounds-admin/internal/domain/model"
	"fairgrounds-admin/internal/domain/repository"
)

type recordedAudit struct {
	action   string
	actorID  string
	metadata map[string]interface{}
}

type fakeAuditRecorder struct {
	entries []recordedAudit
}

func (f *fakeAuditRecorder) Record(action, actorID string, metadata map[string]interface{}) {
	f.entries = append(f.entries, recordedAudit{action: action, actorID: actorID, metadata: metadata})
}

type fakeSettingsRepo struct {
	stored   *model.SystemSettings
	getErr   error
	mergeErr error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*model.SystemSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeSettingsRepo) Merge(ctx context.Context, settings *model.SystemSettings) error {
	if f.mergeErr != nil {
		return f.mergeErr
	}
	copied := *settings
	f.stored = &copied
	return nil
}

type fakeEventRepo struct {
	statuses  map[string]model.EventStatus
	count     int64
	updateErr error
	countErr  error
}

func (f *fakeEventRepo) UpdateStatus(ctx context.Context, eventID string, status model.EventStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.statuses == nil {
		f.statuses = make(map[string]model.EventStatus)
	}
	f.statuses[eventID] = status
	return nil
}

func (f *fakeEventRepo) Count(ctx context.Context) (int64, error) {
	return f.count, f.countErr
}

type fakeVendorRepo struct {
	vendors   map[string]*model.Vendor // keyed eventID + "/" + vendorID
	count     int64
	updated   map[string]model.VendorStatus
	reasons   map[string]string
	findErr   error
	updateErr error
}

func (f *fakeVendorRepo) FindByEventAndID(ctx context.Context, eventID, vendorID string) (*model.Vendor, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	vendor, ok := f.vendors[eventID+"/"+vendorID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return vendor, nil
}

func (f *fakeVendorRepo) UpdateStatus(ctx context.Context, eventID, vendorID string, status model.VendorStatus, rejectionReason string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]model.VendorStatus)
		f.reasons = make(map[string]string)
	}
	f.updated[eventID+"/"+vendorID] = status
	f.reasons[eventID+"/"+vendorID] = rejectionReason
	return nil
}

func (f *fakeVendorRepo) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

type fakeBrandRepo struct {
	updated   map[string]model.BrandStatus
	updateErr error
}

func (f *fakeBrandRepo) UpdateStatus(ctx context.Context, brandID string, status model.BrandStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]model.BrandStatus)
	}
	f.updated[brandID] = status
	return nil
}

type fakeOrderRepo struct {
	orders  []model.Order
	findErr error
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.orders, nil
}

type fakeAuditRepo struct {
	mu        sync.Mutex
	entries   []model.AuditLogEntry
	insertErr error
}

func (f *fakeAuditRepo) Insert(ctx context.Context, entry *model.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) all() []model.AuditLogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.AuditLogEntry(nil), f.entries...)
}
