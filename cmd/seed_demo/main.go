// Seeds a small demo dataset through the service layer. Safe to re-run:
// catalog entries dedup by name and asset codes collide instead of
// duplicating.
package main

import (
	"errors"
	"log"
	"time"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/config"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/database"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/inventory"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/store"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Document{}); err != nil {
		log.Fatalf("Schema sync failed: %v", err)
	}

	svc := inventory.NewService(store.NewGormStore(db.DB))

	// Admin user
	if _, err := svc.GetUserByEmail("admin@example.com"); errors.Is(err, inventory.ErrNotFound) {
		hash, err := utils.HashPassword("admin123")
		if err != nil {
			log.Fatalf("Hash failed: %v", err)
		}
		if err := svc.SaveUser(&models.User{
			Email:    "admin@example.com",
			Password: hash,
			Name:     "Administrator",
			Role:     "admin",
		}); err != nil {
			log.Fatalf("Seed user failed: %v", err)
		}
		log.Println("✅ Seeded admin user (admin@example.com / admin123)")
	}

	groups := []models.AssetGroup{
		{Code: "SIS", Name: "Computer Systems", CodePrefix: "SIS", UsefulLifeYears: 5, AnnualRatePercent: 20},
		{Code: "MOB", Name: "Furniture", CodePrefix: "MOB", UsefulLifeYears: 10, AnnualRatePercent: 10},
		{Code: "VEH", Name: "Vehicles", CodePrefix: "VEH", UsefulLifeYears: 5, AnnualRatePercent: 20},
	}
	for _, g := range groups {
		if err := svc.SaveGroup(g); err != nil {
			log.Fatalf("Seed group %s failed: %v", g.Code, err)
		}
	}

	for _, b := range []models.Brand{
		{Name: "Dell", Description: "Computers and monitors"},
		{Name: "HP", Description: "Printers and laptops"},
		{Name: "Steelcase", Description: "Office furniture"},
	} {
		if err := svc.AddBrand(b); err != nil && !errors.Is(err, inventory.ErrDuplicateName) {
			log.Fatalf("Seed brand %s failed: %v", b.Name, err)
		}
	}

	dep := models.Dependency{Name: "IT Department", ShortCode: "IT", Custodian: "Jane Smith", Location: "Main building, 2nd floor"}
	if err := svc.SaveDependency(&dep); err != nil {
		log.Fatalf("Seed dependency failed: %v", err)
	}
	custodian := models.Custodian{Name: "Jane Smith", NationalID: "0102030405", Role: "IT Lead", Dependency: dep.Name}
	if err := svc.SaveCustodian(&custodian); err != nil {
		log.Fatalf("Seed custodian failed: %v", err)
	}

	assets := []models.Asset{
		{Code: "SIS-001", Name: "Latitude 5440", Brand: "Dell", Model: "5440", Serial: "DL5440-01", Dependency: dep.Name, Custodian: custodian.Name, Value: 1200, AcquisitionDate: time.Now().AddDate(-2, 0, 0), Status: models.AssetStatusActive, GroupCode: "SIS"},
		{Code: "SIS-002", Name: "LaserJet Pro", Brand: "HP", Model: "M404dn", Serial: "HPLJ-77", Dependency: dep.Name, Custodian: custodian.Name, Value: 450, AcquisitionDate: time.Now().AddDate(-4, 0, 0), Status: models.AssetStatusActive, GroupCode: "SIS"},
		{Code: "MOB-001", Name: "Office desk", Brand: "Steelcase", Model: "Series 7", Serial: "", Dependency: dep.Name, Custodian: custodian.Name, Value: 300, AcquisitionDate: time.Now().AddDate(-6, 0, 0), Status: models.AssetStatusActive, GroupCode: "MOB"},
	}
	for _, a := range assets {
		if err := svc.CreateAsset(&a); err != nil && !errors.Is(err, inventory.ErrDuplicateCode) {
			log.Fatalf("Seed asset %s failed: %v", a.Code, err)
		}
	}

	log.Println("✅ Demo data seeded")
}
