package services

import (
	"context"
	"time"

	"calibration-system/internal/dto"
	"calibration-system/internal/entities"
	"calibration-system/pkg/constants"
	apperrors "calibration-system/pkg/errors"
	"calibration-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// In-memory repository doubles mirroring the SQL-backed behavior, so the
// service layer can be exercised without a live database.

type fakeEquipmentRepo struct {
	byID map[string]*entities.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{byID: make(map[string]*entities.Equipment)}
}

func (r *fakeEquipmentRepo) CreateEquipment(_ context.Context, eq entities.Equipment) (*entities.Equipment, error) {
	for _, existing := range r.byID {
		if existing.SerialNumber == eq.SerialNumber && existing.Status != constants.StatusDelivered {
			return nil, apperrors.ErrEquipmentInWorkshop
		}
	}
	eq.CreatedAt = time.Now()
	stored := eq
	r.byID[eq.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeEquipmentRepo) FindActiveBySerial(_ context.Context, serialNumber string) (*entities.Equipment, error) {
	for _, eq := range r.byID {
		if eq.SerialNumber == serialNumber && eq.Status != constants.StatusDelivered {
			out := *eq
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) FindCalibratedBySerial(_ context.Context, serialNumber string) (*entities.Equipment, error) {
	for _, eq := range r.byID {
		if eq.SerialNumber == serialNumber && eq.Status == constants.StatusCalibrated {
			out := *eq
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) SetCalibration(_ context.Context, id string, data []entities.SensorCalibration, spareParts []entities.SparePart, calibrationDate, technician, internalNotes string) (*entities.Equipment, error) {
	eq, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	eq.Status = constants.StatusCalibrated
	eq.CalibrationData = data
	eq.SpareParts = spareParts
	eq.CalibrationDate = null.StringFrom(calibrationDate)
	eq.Technician = null.StringFrom(technician)
	eq.InternalNotes = null.StringFrom(internalNotes)
	eq.UpdatedAt = null.TimeFrom(time.Now())
	out := *eq
	return &out, nil
}

func (r *fakeEquipmentRepo) SetDelivery(_ context.Context, id string, deliveryNote, deliveryLocation, deliveryDate, certificateNumber string) (*entities.Equipment, error) {
	eq, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	eq.Status = constants.StatusDelivered
	eq.DeliveryNote = null.StringFrom(deliveryNote)
	eq.DeliveryLocation = null.StringFrom(deliveryLocation)
	eq.DeliveryDate = null.StringFrom(deliveryDate)
	eq.CertificateNumber = null.StringFrom(certificateNumber)
	eq.UpdatedAt = null.TimeFrom(time.Now())
	out := *eq
	return &out, nil
}

func (r *fakeEquipmentRepo) ListByStatus(_ context.Context, status string, _ uint64) ([]entities.Equipment, error) {
	list := make([]entities.Equipment, 0)
	for _, eq := range r.byID {
		if eq.Status == status {
			list = append(list, *eq)
		}
	}
	return list, nil
}

type fakeHistoryRepo struct {
	entries []entities.CalibrationHistory
}

func (r *fakeHistoryRepo) AppendEntry(_ context.Context, entry entities.CalibrationHistory) (*entities.CalibrationHistory, error) {
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, entry)
	out := entry
	return &out, nil
}

func (r *fakeHistoryRepo) FindEntry(_ context.Context, id string) (*entities.CalibrationHistory, error) {
	for i := range r.entries {
		if r.entries[i].ID == id {
			out := r.entries[i]
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeHistoryRepo) ListBySerial(_ context.Context, serialNumber string, _ uint64) ([]entities.CalibrationHistory, error) {
	list := make([]entities.CalibrationHistory, 0)
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].SerialNumber == serialNumber {
			list = append(list, r.entries[i])
		}
	}
	return list, nil
}

func (r *fakeHistoryRepo) Search(_ context.Context, search dto.HistorySearchDTO, _ types.Filter) ([]entities.CalibrationHistory, uint64, error) {
	list := make([]entities.CalibrationHistory, 0)
	for _, e := range r.entries {
		if search.SerialNumber != "" && e.SerialNumber != search.SerialNumber {
			continue
		}
		if search.Technician != "" && e.Technician != search.Technician {
			continue
		}
		list = append(list, e)
	}
	return list, uint64(len(list)), nil
}

func (r *fakeHistoryRepo) AttachDelivery(_ context.Context, serialNumber, deliveryNote, certificateNumber string) error {
	for i := range r.entries {
		if r.entries[i].SerialNumber == serialNumber && !r.entries[i].CertificateNumber.Valid {
			r.entries[i].DeliveryNote = null.StringFrom(deliveryNote)
			r.entries[i].CertificateNumber = null.StringFrom(certificateNumber)
		}
	}
	return nil
}

type fakeCatalogRepo struct {
	bySerial map[string]*entities.EquipmentCatalog
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{bySerial: make(map[string]*entities.EquipmentCatalog)}
}

func (r *fakeCatalogRepo) UpsertIntake(_ context.Context, cat entities.EquipmentCatalog) error {
	if existing, ok := r.bySerial[cat.SerialNumber]; ok {
		cat.LastCalibrationData = existing.LastCalibrationData
	}
	stored := cat
	r.bySerial[cat.SerialNumber] = &stored
	return nil
}

func (r *fakeCatalogRepo) UpdateLastCalibration(_ context.Context, serialNumber string, data []entities.SensorCalibration) error {
	cat, ok := r.bySerial[serialNumber]
	if !ok {
		return apperrors.ErrNotFound
	}
	cat.LastCalibrationData = data
	return nil
}

func (r *fakeCatalogRepo) FindBySerial(_ context.Context, serialNumber string) (*entities.EquipmentCatalog, error) {
	cat, ok := r.bySerial[serialNumber]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := *cat
	return &out, nil
}

func (r *fakeCatalogRepo) List(_ context.Context, _ uint64) ([]entities.EquipmentCatalog, error) {
	list := make([]entities.EquipmentCatalog, 0, len(r.bySerial))
	for _, cat := range r.bySerial {
		list = append(list, *cat)
	}
	return list, nil
}

type fakeCounterRepo struct {
	counters map[int]int
	ceiling  int
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[int]int), ceiling: 99999}
}

func (r *fakeCounterRepo) Next(_ context.Context, year int) (int, error) {
	if r.counters[year] >= r.ceiling {
		return 0, apperrors.ErrCounterExhausted
	}
	r.counters[year]++
	return r.counters[year], nil
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.values, key)
	return nil
}
