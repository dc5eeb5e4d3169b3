package catalog

func str(s string) *string { return &s }

// SeedEntries is the stock test menu loaded by `lims-server seed
// catalog` on a fresh install. Ranges are free text on purpose: the
// classifier understands the numeric shapes and passes the rest
// through as Normal.
func SeedEntries() []Entry {
	return []Entry{
		// Biochemistry
		{Category: "Biochemistry Tests", Subcategory: "Blood Sugar", Name: "Fasting Blood Sugar (FBS)", Unit: str("mg/dL"), ReferenceRange: str("70–110")},
		{Category: "Biochemistry Tests", Subcategory: "Blood Sugar", Name: "Postprandial Blood Sugar (PPBS)", Unit: str("mg/dL"), ReferenceRange: str("110–160")},
		{Category: "Biochemistry Tests", Subcategory: "Blood Sugar", Name: "Random Blood Sugar (RBS)", Unit: str("mg/dL"), ReferenceRange: str("70–140")},
		{Category: "Biochemistry Tests", Subcategory: "Blood Sugar", Name: "HbA1c", Unit: str("%"), ReferenceRange: str("4.4–6.7")},
		{Category: "Biochemistry Tests", Subcategory: "Renal Function", Name: "Blood Urea Nitrogen (BUN)", Unit: str("mg/dL"), ReferenceRange: str("25–40")},
		{Category: "Biochemistry Tests", Subcategory: "Renal Function", Name: "Serum Creatinine", Unit: str("mg/dL"), ReferenceRange: str("0.6–1.5")},
		{Category: "Biochemistry Tests", Subcategory: "Renal Function", Name: "Uric Acid", Unit: str("mg/dL"), ReferenceRange: str("M: 3.5–7.2; F: 2.6–6.0")},
		{Category: "Biochemistry Tests", Subcategory: "Liver Function", Name: "Total Bilirubin", Unit: str("mg/dL"), ReferenceRange: str("0–1.2")},
		{Category: "Biochemistry Tests", Subcategory: "Liver Function", Name: "Direct Bilirubin", Unit: str("mg/dL"), ReferenceRange: str("0–0.2")},
		{Category: "Biochemistry Tests", Subcategory: "Liver Function", Name: "Indirect Bilirubin", Unit: str("mg/dL"), ReferenceRange: str("0.1–1.1")},
		{Category: "Biochemistry Tests", Subcategory: "Liver Function", Name: "SGOT (AST)", Unit: str("U/L"), ReferenceRange: str("8–40")},
		{Category: "Biochemistry Tests", Subcategory: "Liver Function", Name: "SGPT (ALT)", Unit: str("U/L"), ReferenceRange: str("8–40")},
		{Category: "Biochemistry Tests", Subcategory: "Liver Function", Name: "Alkaline Phosphatase (ALP)", Unit: str("U/L"), ReferenceRange: str("108–306")},
		{Category: "Biochemistry Tests", Subcategory: "Liver Function", Name: "Gamma GT (GGT)", Unit: str("U/L"), ReferenceRange: str("Up to 60")},
		{Category: "Biochemistry Tests", Subcategory: "Proteins", Name: "Total Protein", Unit: str("g/dL"), ReferenceRange: str("6–8")},
		{Category: "Biochemistry Tests", Subcategory: "Proteins", Name: "Albumin", Unit: str("g/dL"), ReferenceRange: str("3.5–5.5")},
		{Category: "Biochemistry Tests", Subcategory: "Proteins", Name: "Globulin", Unit: str("g/dL"), ReferenceRange: str("2.5–3.5")},
		{Category: "Biochemistry Tests", Subcategory: "Proteins", Name: "A/G Ratio", Unit: str("Ratio"), ReferenceRange: str("1.2–2.2")},
		{Category: "Biochemistry Tests", Subcategory: "Electrolytes", Name: "Calcium (Total)", Unit: str("mg/dL"), ReferenceRange: str("8.5–10.5")},
		{Category: "Biochemistry Tests", Subcategory: "Electrolytes", Name: "Phosphorus", Unit: str("mg/dL"), ReferenceRange: str("2.5–5.0")},
		{Category: "Biochemistry Tests", Subcategory: "Electrolytes", Name: "Sodium", Unit: str("mEq/L"), ReferenceRange: str("135–145")},
		{Category: "Biochemistry Tests", Subcategory: "Electrolytes", Name: "Potassium", Unit: str("mEq/L"), ReferenceRange: str("3.6–5.0")},
		{Category: "Biochemistry Tests", Subcategory: "Electrolytes", Name: "Chloride", Unit: str("mEq/L"), ReferenceRange: str("98–119")},
		{Category: "Biochemistry Tests", Subcategory: "Lipids", Name: "Lipid Profile", Unit: str("mg/dL"), ReferenceRange: str("Varies per component")},
		{Category: "Biochemistry Tests", Subcategory: "Pancreatic", Name: "Amylase", Unit: str("U/L"), ReferenceRange: str("Up to 85")},
		{Category: "Biochemistry Tests", Subcategory: "Pancreatic", Name: "Lipase", Unit: str("U/L"), ReferenceRange: str("Up to 200")},

		// Hematology
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Hemoglobin (Hb)", Unit: str("g/dL"), ReferenceRange: str("M: 13–16; F: 11.5–14.5")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Total Leukocyte Count (TLC)", Unit: str("x10³/µL"), ReferenceRange: str("4–11")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Red Blood Cell Count (RBC)", Unit: str("x10⁶/µL"), ReferenceRange: str("M: 4.5–6.0; F: 4.0–4.5")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Packed Cell Volume (PCV)", Unit: str("%"), ReferenceRange: str("M: 42–52; F: 36–48")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Mean Corpuscular Volume (MCV)", Unit: str("fL"), ReferenceRange: str("82–92")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Mean Corpuscular Hemoglobin (MCH)", Unit: str("pg"), ReferenceRange: str("27–32")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Mean Corpuscular Hemoglobin Concentration (MCHC)", Unit: str("g/dL"), ReferenceRange: str("32–36")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Differential Leukocyte Count (DLC)", Unit: str("%"), ReferenceRange: str("Neutrophils: 40–75; Lymphocytes: 20–45; Monocytes: 2–8; Eosinophils: 1–4; Basophils: 0–1")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Erythrocyte Sedimentation Rate (ESR)", Unit: str("mm/hr"), ReferenceRange: str("M: up to 15; F: up to 20")},
		{Category: "Hematology Tests", Subcategory: "Complete Blood Count", Name: "Reticulocyte Count", Unit: str("%"), ReferenceRange: str("Adult: 0.5–2; Infant: 2–6")},
		{Category: "Hematology Tests", Subcategory: "Coagulation", Name: "Bleeding Time", Unit: str("minutes"), ReferenceRange: str("2–7")},
		{Category: "Hematology Tests", Subcategory: "Coagulation", Name: "Clotting Time", Unit: str("minutes"), ReferenceRange: str("4–9")},
		{Category: "Hematology Tests", Subcategory: "Coagulation", Name: "Prothrombin Time (PT)", Unit: str("seconds"), ReferenceRange: str("10–14")},
		{Category: "Hematology Tests", Subcategory: "Coagulation", Name: "International Normalized Ratio (INR)", Unit: str("Ratio"), ReferenceRange: str("<1.1")},
		{Category: "Hematology Tests", Subcategory: "Coagulation", Name: "Activated Partial Thromboplastin Time (APTT)", Unit: str("seconds"), ReferenceRange: str("30–40")},

		// Microbiology & Serology
		{Category: "Microbiology & Serology Tests", Subcategory: "Serology", Name: "Widal Test", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Microbiology & Serology Tests", Subcategory: "Serology", Name: "HIV Test", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Microbiology & Serology Tests", Subcategory: "Serology", Name: "HCV Test", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Microbiology & Serology Tests", Subcategory: "Serology", Name: "HBsAg Test", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Microbiology & Serology Tests", Subcategory: "Serology", Name: "Dengue NS1 Antigen", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Microbiology & Serology Tests", Subcategory: "Serology", Name: "Dengue IgG/IgM", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Microbiology & Serology Tests", Subcategory: "Serology", Name: "Malaria Parasite Test", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Microbiology & Serology Tests", Subcategory: "Skin", Name: "Mantoux Test", Unit: str("mm induration"), ReferenceRange: str("<5 mm (negative)")},

		// Urine and Stool
		{Category: "Urine and Stool Tests", Subcategory: "Routine", Name: "Urine Routine Examination", Unit: str("–"), ReferenceRange: str("Normal")},
		{Category: "Urine and Stool Tests", Subcategory: "Routine", Name: "Urine Pregnancy Test", Unit: str("–"), ReferenceRange: str("Negative")},
		{Category: "Urine and Stool Tests", Subcategory: "Routine", Name: "Stool Routine Examination", Unit: str("–"), ReferenceRange: str("Normal")},
	}
}
