// Package schema maps ad category tags to the ordered attribute fields the
// detail view shows. The table replaces the per-category rendering switch the
// dashboard used to carry: one lookup, no branches, total over any input.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"tenalyadmin/internal/domain"
)

// FormatFunc renders an attribute value for display. nil means verbatim.
type FormatFunc func(v any) string

// Field is one displayable attribute of a category.
type Field struct {
	Label  string
	Key    string
	Format FormatFunc
}

// Row is one rendered label/value line of the detail view.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const keyBulkPrice = "bulkPrice"

// FieldsFor returns the ordered field definitions for a category tag.
// Unrecognized tags yield nil, never an error.
func FieldsFor(category string) []Field {
	return categories[category]
}

// Categories returns every known tag, for filter dropdowns.
func Categories() []string {
	return append([]string(nil), categoryOrder...)
}

// Project renders the category-specific rows for one ad. Absent values
// (missing key, nil, empty string, empty list) are skipped silently. The
// bulkPrice composite expands into one row per tier.
func Project(ad *domain.AdDetails) []Row {
	if ad == nil {
		return nil
	}

	var rows []Row
	for _, f := range FieldsFor(ad.AdCategory) {
		if f.Key == keyBulkPrice {
			rows = append(rows, bulkPriceRows(f.Label, ad.Attrs[f.Key])...)
			continue
		}

		v, ok := ad.Attrs[f.Key]
		if !ok || isAbsent(v) {
			continue
		}

		value := render(v)
		if f.Format != nil {
			value = f.Format(v)
		}
		rows = append(rows, Row{Label: f.Label, Value: value})
	}
	return rows
}

func isAbsent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

func render(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, render(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// joinComma renders list-valued attributes as a comma-separated line.
func joinComma(v any) string {
	return render(v)
}

// thousands renders currency-like numerics with locale grouping. Values that
// are not numeric come through verbatim (salary ranges like "100k-200k").
func thousands(v any) string {
	switch t := v.(type) {
	case float64:
		return humanize.Commaf(t)
	case int:
		return humanize.Comma(int64(t))
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return humanize.Commaf(n)
		}
		return t
	}
	return render(v)
}

// bulkPriceRows expands the composite bulkPrice attribute. The value arrives
// as decoded JSON; anything that is not a tier list yields no rows.
func bulkPriceRows(label string, v any) []Row {
	if isAbsent(v) {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var tiers []domain.BulkPriceTier
	if err := json.Unmarshal(raw, &tiers); err != nil {
		return nil
	}

	rows := make([]Row, 0, len(tiers))
	for _, t := range tiers {
		qty := strconv.FormatFloat(t.Quantity, 'f', -1, 64)
		rows = append(rows, Row{
			Label: label,
			Value: fmt.Sprintf("%s %s @ ₦%s", qty, t.Unit, humanize.Commaf(t.AmountPerUnit)),
		})
	}
	return rows
}

var categoryOrder = []string{
	"pet", "vehicle", "property", "gadget", "laptop", "job", "hire",
	"fashion", "household", "beauty", "construction", "agriculture",
	"kids", "equipment", "service",
}

var categories = map[string][]Field{
	"pet": {
		{Label: "Pet Type", Key: "petType"},
		{Label: "Breed", Key: "breed"},
		{Label: "Age", Key: "age"},
		{Label: "Gender", Key: "gender"},
		{Label: "Health Status", Key: "healthStatus", Format: joinComma},
	},
	"vehicle": {
		{Label: "Vehicle Type", Key: "vehicleType"},
		{Label: "Make", Key: "make"},
		{Label: "Model", Key: "model"},
		{Label: "Year", Key: "year"},
		{Label: "Color", Key: "color"},
		{Label: "Interior Color", Key: "interiorColor"},
		{Label: "Transmission", Key: "transmission"},
		{Label: "VIN/Chassis Number", Key: "vinChassisNumber"},
		{Label: "Car Registration", Key: "carRegistered"},
		{Label: "Exchange Possible", Key: "exchangePossible"},
		{Label: "Key Features", Key: "carKeyFeatures"},
		{Label: "Car Type", Key: "carType"},
		{Label: "Fuel Type", Key: "fuel"},
		{Label: "Body Type", Key: "carBody"},
		{Label: "Seats", Key: "seat"},
		{Label: "Drive Train", Key: "driveTrain"},
		{Label: "Cylinders", Key: "numberOfCylinders"},
		{Label: "Engine Size", Key: "engineSizes"},
		{Label: "Horse Power", Key: "horsePower"},
	},
	"property": {
		{Label: "Property Type", Key: "propertyType"},
		{Label: "Address", Key: "propertyAddress"},
		{Label: "Bedrooms", Key: "numberOfBedrooms"},
		{Label: "Bathrooms", Key: "numberOfToilet"},
		{Label: "Furnishing", Key: "furnishing"},
		{Label: "Parking", Key: "parking"},
		{Label: "Square Meter", Key: "squareMeter"},
		{Label: "Property Condition", Key: "propertyCondition"},
		{Label: "Property Facilities", Key: "propertyFacilities"},
		{Label: "Ownership Status", Key: "ownershipStatus"},
		{Label: "Service Charge", Key: "serviceCharge", Format: thousands},
		{Label: "Title Documents", Key: "titleDocuments"},
		{Label: "Maximum Allowed Guests", Key: "maximumAllowedGuest"},
		{Label: "Smoking Allowed", Key: "isSmokingAllowed"},
		{Label: "Parties Allowed", Key: "isPartiesAllowed"},
		{Label: "Pets Allowed", Key: "petsAllowed"},
	},
	"gadget": {
		{Label: "Brand", Key: "gadgetBrand"},
		{Label: "Storage", Key: "storageCapacity"},
		{Label: "RAM", Key: "ram"},
		{Label: "Operating System", Key: "operatingSystem"},
		{Label: "Sim Type", Key: "simType"},
		{Label: "Network", Key: "network"},
		{Label: "Battery Health", Key: "batteryHealth"},
		{Label: "Color", Key: "gadgetColor"},
		{Label: "Accessories", Key: "accessories"},
		{Label: "Connectivity", Key: "connectivityType"},
		{Label: "Condition", Key: "condition"},
		{Label: "Warranty", Key: "warranty"},
	},
	"laptop": {
		{Label: "Laptop Type", Key: "laptopType"},
		{Label: "Brand", Key: "laptopBrand"},
		{Label: "Processor", Key: "laptopProcessor"},
		{Label: "RAM", Key: "laptopRam"},
		{Label: "Storage", Key: "laptopStorage"},
		{Label: "Battery Health", Key: "laptopBatteryHealth"},
		{Label: "Color", Key: "laptopColor"},
		{Label: "Accessories", Key: "laptopAccessories"},
		{Label: "Warranty", Key: "laptopWarranty"},
		{Label: "Connectivity", Key: "laptopConnectivityType"},
		{Label: "Screen Size", Key: "screenSize"},
		{Label: "Resolution", Key: "resolution"},
		{Label: "Refresh Rate", Key: "refreshRate"},
		{Label: "Speed Rating", Key: "speedRating"},
		{Label: "Condition", Key: "condition"},
		{Label: "Capacity", Key: "capacity"},
	},
	"job": {
		{Label: "Job Title", Key: "jobTitle"},
		{Label: "Job Type", Key: "jobType"},
		{Label: "Company", Key: "companyEmployerName"},
		{Label: "Experience Level", Key: "experienceLevel"},
		{Label: "Location", Key: "location"},
		{Label: "Salary Range", Key: "salaryRange", Format: thousands},
		{Label: "Years of Experience", Key: "yearOfExperience"},
		{Label: "Gender Preference", Key: "genderPreference"},
		{Label: "Application Deadline", Key: "applicationDeadline"},
		// upstream sends this key misspelled on job records
		{Label: "Skills", Key: "skils", Format: joinComma},
		{Label: "Location Type", Key: "jobLocationType"},
		{Label: "Responsibilities", Key: "responsibilities"},
		{Label: "Requirements", Key: "requirements"},
		{Label: "Pricing Type", Key: "pricingType"},
	},
	"hire": {
		{Label: "Hire Title", Key: "hireTitle"},
		{Label: "Experience Level", Key: "experienceLevel"},
		{Label: "Work Mode", Key: "workMode"},
		{Label: "Years of Experience", Key: "yearsOfExperience"},
		{Label: "Relationship Status", Key: "relationshipStatus"},
		{Label: "Portfolio Link", Key: "portfolioLink"},
		{Label: "Other Links", Key: "otherLinks"},
		{Label: "Skills", Key: "skills", Format: joinComma},
		{Label: "Pricing Type", Key: "pricingType"},
		{Label: "Resume", Key: "resume"},
		{Label: "Salary Range", Key: "salaryRange", Format: thousands},
	},
	"fashion": {
		{Label: "Fashion Type", Key: "fashionType"},
		{Label: "Brand", Key: "fashionBrand"},
		{Label: "Size", Key: "size"},
		{Label: "Color", Key: "fashionColor"},
		{Label: "Material", Key: "fashionMaterial"},
		{Label: "Frame Material", Key: "frameMaterial"},
		{Label: "Lens Type", Key: "lensType"},
		{Label: "Frame Shape", Key: "frameShape"},
		{Label: "Accessories", Key: "fashionAccessories"},
		{Label: "Condition", Key: "condition"},
	},
	"household": {
		{Label: "Household Type", Key: "householdType"},
		{Label: "Brand", Key: "householdBrand"},
		{Label: "Size", Key: "size"},
		{Label: "Condition", Key: "condition"},
		{Label: "Material", Key: "householdMaterial"},
		{Label: "Power Source", Key: "householdPowersource"},
		{Label: "Room Type", Key: "roomType"},
		{Label: "Style", Key: "householdStyle"},
		{Label: "Color", Key: "householdColor"},
		{Label: "Power Type", Key: "powerType"},
		{Label: "Color Temperature", Key: "colorTemperature"},
	},
	"beauty": {
		{Label: "Beauty Type", Key: "beautyType"},
		{Label: "Brand", Key: "beautyBrand"},
		{Label: "Skin Type", Key: "skinType"},
		{Label: "Hair Type", Key: "hairType"},
		{Label: "Gender", Key: "gender"},
		{Label: "Target Concerns", Key: "targetConcern"},
		{Label: "Skin Tone", Key: "skinTone"},
		{Label: "Fragrance Family", Key: "fragranceFamily"},
		{Label: "Power Source", Key: "beautyPowerSource"},
		{Label: "Condition", Key: "condition"},
	},
	"construction": {
		{Label: "Construction Type", Key: "constructionType"},
		{Label: "Brand", Key: "constructionBrand"},
		{Label: "Material", Key: "constructionMaterial"},
		{Label: "Unit", Key: "constructionUnit"},
		{Label: "Condition", Key: "condition"},
		{Label: "Warranty", Key: "warranty"},
		{Label: "Power Rating", Key: "powerRating"},
		{Label: "Year of Manufacture", Key: "yearOfManufacture"},
		{Label: "Fuel Type", Key: "fuelType"},
		{Label: "Finish", Key: "finish"},
		{Label: "Color", Key: "constructionColor"},
		{Label: "Size", Key: "size"},
		{Label: "Experience Level", Key: "experienceLevel"},
		{Label: "Bulk Price", Key: keyBulkPrice},
	},
	"agriculture": {
		{Label: "Agriculture Type", Key: "agricultureType"},
		{Label: "Condition", Key: "condition"},
		{Label: "Unit", Key: "unit"},
		{Label: "Bulk Price", Key: keyBulkPrice},
		{Label: "Feed Type", Key: "feedType"},
		{Label: "Brand", Key: "brand"},
		{Label: "Formulation Type", Key: "formulationType"},
		{Label: "Service Mode", Key: "serviceMode"},
		{Label: "Experience Level", Key: "experienceLevel"},
		{Label: "Availability", Key: "availability"},
	},
	"kids": {
		{Label: "Condition", Key: "condition"},
		{Label: "Color", Key: "color"},
		{Label: "Gender", Key: "gender"},
		{Label: "Age Group", Key: "ageGroup"},
	},
	"equipment": {
		{Label: "Brand", Key: "brand"},
		{Label: "Condition", Key: "condition"},
		{Label: "Power Source", Key: "powerSource"},
		{Label: "Usage Type", Key: "usageType"},
	},
	"service": {
		{Label: "Service Duration", Key: "serviceDuration"},
		{Label: "Experience", Key: "serviceExperience"},
		{Label: "Availability", Key: "serviceAvailability"},
		{Label: "Service Location", Key: "serviceLocation"},
		{Label: "Years of Experience", Key: "yearOfExperience"},
		{Label: "Pricing Type", Key: "pricingType"},
		{Label: "Discount", Key: "serviceDiscount"},
	},
}
