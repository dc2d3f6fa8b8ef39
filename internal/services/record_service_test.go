package services

import (
	"testing"

	"github.com/gaineafrica/farmrecords/internal/models"
)

// validRecordInput builds a complete record payload
func validRecordInput() RecordInput {
	return RecordInput{
		Crop:       strPtr("maize"),
		Planting:   flexF(100),
		Weeding:    flexF(50),
		Harvesting: flexF(30),
		Storage:    flexF(20),
		Sales:      flexF(500),
	}
}

func TestCreateRecord(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	record, err := CreateRecord(db, owner.UserID, validRecordInput())
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	if record.ID == 0 {
		t.Error("Expected server-assigned record id")
	}
	if record.ProfitOrLoss != 300 {
		t.Errorf("Expected profit 300, got %v", record.ProfitOrLoss)
	}

	// profit_or_loss is never persisted
	if db.Migrator().HasColumn(&models.Record{}, "profit_or_loss") {
		t.Error("profit_or_loss must not exist as a stored column")
	}
}

func TestCreateRecordMissingField(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	in := validRecordInput()
	in.Storage = nil

	_, err := CreateRecord(db, owner.UserID, in)
	if err == nil {
		t.Fatal("Expected validation error for missing storage")
	}
	assertErrorType(t, err, 400, "records.validation.input")
}

func TestCreateRecordNegativeAmount(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	in := validRecordInput()
	in.Weeding = flexF(-5)

	_, err := CreateRecord(db, owner.UserID, in)
	if err == nil {
		t.Fatal("Expected validation error for negative weeding")
	}
	assertErrorType(t, err, 400, "records.validation.number")
}

func TestListRecordsEmpty(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	records, err := ListRecords(db, owner.UserID)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if records == nil {
		t.Fatal("Expected non-nil empty slice")
	}
	if len(records) != 0 {
		t.Errorf("Expected 0 records, got %d", len(records))
	}
}

func TestListRecordsScopedToOwner(t *testing.T) {
	db := setupServiceDB(t)
	a, _ := RegisterUser(db, validRegisterInput("a@example.com"))
	b, _ := RegisterUser(db, validRegisterInput("b@example.com"))

	if _, err := CreateRecord(db, a.UserID, validRecordInput()); err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	aRecords, err := ListRecords(db, a.UserID)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if len(aRecords) != 1 {
		t.Errorf("Expected 1 record for owner, got %d", len(aRecords))
	}

	bRecords, err := ListRecords(db, b.UserID)
	if err != nil {
		t.Fatalf("Failed to list records: %v", err)
	}
	if len(bRecords) != 0 {
		t.Errorf("Expected 0 records for other user, got %d", len(bRecords))
	}
}

// A record that exists under another owner reads as not found, never as
// forbidden, so record ids cannot be probed across accounts.
func TestGetRecordForeignOwner(t *testing.T) {
	db := setupServiceDB(t)
	a, _ := RegisterUser(db, validRegisterInput("a@example.com"))
	b, _ := RegisterUser(db, validRegisterInput("b@example.com"))

	record, err := CreateRecord(db, a.UserID, validRecordInput())
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	_, err = GetRecord(db, b.UserID, record.ID)
	if err == nil {
		t.Fatal("Expected not found for foreign record")
	}
	assertErrorType(t, err, 404, "records.notfound")
}

func TestUpdateRecordPartial(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	created, err := CreateRecord(db, owner.UserID, validRecordInput())
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	updated, err := UpdateRecord(db, owner.UserID, created.ID, RecordInput{Sales: flexF(400)})
	if err != nil {
		t.Fatalf("Failed to update record: %v", err)
	}

	if updated.Sales != 400 {
		t.Errorf("Expected sales 400, got %v", updated.Sales)
	}
	if updated.ProfitOrLoss != 200 {
		t.Errorf("Expected recomputed profit 200, got %v", updated.ProfitOrLoss)
	}
	// Fields absent from the body stay untouched
	if updated.Planting != 100 || updated.Crop != "maize" {
		t.Error("Absent fields were modified by partial update")
	}
}

func TestUpdateRecordValidationLeavesRecordUntouched(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	created, err := CreateRecord(db, owner.UserID, validRecordInput())
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	_, err = UpdateRecord(db, owner.UserID, created.ID, RecordInput{
		Crop:  strPtr("beans"),
		Sales: flexF(-1),
	})
	if err == nil {
		t.Fatal("Expected validation error for negative sales")
	}
	assertErrorType(t, err, 400, "records.validation.number")

	// Nothing was written, including the valid crop field
	fresh, err := GetRecord(db, owner.UserID, created.ID)
	if err != nil {
		t.Fatalf("Failed to re-read record: %v", err)
	}
	if fresh.Crop != "maize" || fresh.Sales != 500 {
		t.Error("Failed update partially wrote fields")
	}
}

func TestUpdateRecordNotFound(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	_, err := UpdateRecord(db, owner.UserID, 9999, RecordInput{Sales: flexF(1)})
	if err == nil {
		t.Fatal("Expected not found for absent record")
	}
	assertErrorType(t, err, 404, "records.notfound")
}

func TestDeleteRecord(t *testing.T) {
	db := setupServiceDB(t)
	owner, _ := RegisterUser(db, validRegisterInput("owner@example.com"))

	created, err := CreateRecord(db, owner.UserID, validRecordInput())
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	if err := DeleteRecord(db, owner.UserID, created.ID); err != nil {
		t.Fatalf("Failed to delete record: %v", err)
	}

	_, err = GetRecord(db, owner.UserID, created.ID)
	if err == nil {
		t.Fatal("Expected not found after delete")
	}
	assertErrorType(t, err, 404, "records.notfound")
}

func TestDeleteRecordForeignOwner(t *testing.T) {
	db := setupServiceDB(t)
	a, _ := RegisterUser(db, validRegisterInput("a@example.com"))
	b, _ := RegisterUser(db, validRegisterInput("b@example.com"))

	created, err := CreateRecord(db, a.UserID, validRecordInput())
	if err != nil {
		t.Fatalf("Failed to create record: %v", err)
	}

	err = DeleteRecord(db, b.UserID, created.ID)
	if err == nil {
		t.Fatal("Expected not found when deleting a foreign record")
	}
	assertErrorType(t, err, 404, "records.notfound")

	// Still intact for the real owner
	if _, err := GetRecord(db, a.UserID, created.ID); err != nil {
		t.Errorf("Record should survive a foreign delete: %v", err)
	}
}
