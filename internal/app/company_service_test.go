package app

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"internbridge/internal/common"
	"internbridge/internal/domain/company"
)

type repKey struct {
	companyID common.UUID
	accountID common.UUID
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[common.UUID]company.Company
	locations map[common.UUID][]company.Location
	benefits  map[common.UUID][]string
	reps      map[repKey]bool
	// failReplace simulates a storage failure inside the replace
	// transaction: the call errors and the stored set stays untouched.
	failReplace error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies: make(map[common.UUID]company.Company),
		locations: make(map[common.UUID][]company.Location),
		benefits:  make(map[common.UUID][]string),
		reps:      make(map[repKey]bool),
	}
}

func (r *fakeCompanyRepo) IsRepresentative(ctx context.Context, companyID, accountID common.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reps[repKey{companyID, accountID}], nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	return &c, nil
}

func (r *fakeCompanyRepo) ListLocations(ctx context.Context, companyID common.UUID) ([]company.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]company.Location, len(r.locations[companyID]))
	copy(out, r.locations[companyID])
	return out, nil
}

func (r *fakeCompanyRepo) ReplaceLocations(ctx context.Context, companyID common.UUID, locations []company.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failReplace != nil {
		return common.NewError(common.CodeInternal, "failed to commit locations", r.failReplace)
	}
	stored := make([]company.Location, len(locations))
	copy(stored, locations)
	for i := range stored {
		stored[i].ID = common.NewUUID()
		stored[i].CompanyID = companyID
	}
	r.locations[companyID] = stored
	return nil
}

func (r *fakeCompanyRepo) ListBenefits(ctx context.Context, companyID common.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.benefits[companyID]))
	copy(out, r.benefits[companyID])
	return out, nil
}

func (r *fakeCompanyRepo) ReplaceBenefits(ctx context.Context, companyID common.UUID, benefits []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failReplace != nil {
		return common.NewError(common.CodeInternal, "failed to commit benefits", r.failReplace)
	}
	stored := make([]string, len(benefits))
	copy(stored, benefits)
	r.benefits[companyID] = stored
	return nil
}

func newCompanyFixture(t *testing.T) (*CompanyService, *fakeCompanyRepo, common.UUID) {
	t.Helper()
	repo := newFakeCompanyRepo()
	companyID := common.NewUUID()
	repo.companies[companyID] = company.Company{ID: companyID, Name: "Acme"}
	return NewCompanyService(repo), repo, companyID
}

func TestUpdateLocationsDropsInvalidEntries(t *testing.T) {
	service, _, companyID := newCompanyFixture(t)

	err := service.UpdateLocations(context.Background(), companyID, []company.Location{
		{Name: "HQ", Address: "123 Main", IsPrimary: true},
		{Name: "", Address: "x"},
		{Name: "   ", Address: "y"},
		{Name: "No Address", Address: "  "},
	})
	if err != nil {
		t.Fatalf("update locations: %v", err)
	}

	stored, err := service.Locations(context.Background(), companyID)
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "HQ" || stored[0].Address != "123 Main" || !stored[0].IsPrimary {
		t.Fatalf("expected exactly the HQ location, got %+v", stored)
	}
}

func TestUpdateLocationsIsIdempotent(t *testing.T) {
	service, _, companyID := newCompanyFixture(t)
	input := []company.Location{
		{Name: "HQ", Address: "123 Main", IsPrimary: true},
		{Name: "Lab", Address: "456 Side", IsRemote: true},
	}

	if err := service.UpdateLocations(context.Background(), companyID, input); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first, _ := service.Locations(context.Background(), companyID)

	if err := service.UpdateLocations(context.Background(), companyID, input); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second, _ := service.Locations(context.Background(), companyID)

	if len(first) != len(second) {
		t.Fatalf("idempotency broken: %d vs %d locations", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Address != second[i].Address {
			t.Fatalf("idempotency broken at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestUpdateLocationsFailureLeavesPreviousSet(t *testing.T) {
	service, repo, companyID := newCompanyFixture(t)

	if err := service.UpdateLocations(context.Background(), companyID, []company.Location{
		{Name: "HQ", Address: "123 Main"},
	}); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	repo.failReplace = context.DeadlineExceeded
	err := service.UpdateLocations(context.Background(), companyID, []company.Location{
		{Name: "New Office", Address: "789 Other"},
	})
	if !common.Is(err, common.CodeInternal) {
		t.Fatalf("expected storage error to surface, got %v", err)
	}

	stored, _ := service.Locations(context.Background(), companyID)
	if len(stored) != 1 || stored[0].Name != "HQ" {
		t.Fatalf("previous set must survive a failed replace, got %+v", stored)
	}
}

func TestUpdateLocationsUnknownCompany(t *testing.T) {
	service, _, _ := newCompanyFixture(t)

	err := service.UpdateLocations(context.Background(), common.NewUUID(), []company.Location{
		{Name: "HQ", Address: "123 Main"},
	})
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateBenefitsTrimsAndDropsBlanks(t *testing.T) {
	service, _, companyID := newCompanyFixture(t)

	if err := service.UpdateBenefits(context.Background(), companyID, []string{" Health insurance ", "", "   ", "Remote fridays"}); err != nil {
		t.Fatalf("update benefits: %v", err)
	}

	stored, err := service.Benefits(context.Background(), companyID)
	if err != nil {
		t.Fatalf("list benefits: %v", err)
	}
	want := []string{"Health insurance", "Remote fridays"}
	if !reflect.DeepEqual(stored, want) {
		t.Fatalf("benefits = %v, want %v", stored, want)
	}
}

func TestUpdateBenefitsPreservesOrder(t *testing.T) {
	service, _, companyID := newCompanyFixture(t)
	input := []string{"Gym", "Lunch", "Transport", "Training"}

	if err := service.UpdateBenefits(context.Background(), companyID, input); err != nil {
		t.Fatalf("update benefits: %v", err)
	}
	stored, _ := service.Benefits(context.Background(), companyID)
	if !reflect.DeepEqual(stored, input) {
		t.Fatalf("order not preserved: %v", stored)
	}
}
