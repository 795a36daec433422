package synthesis

// CatalogReference is the Davis & Shirtliff inventory reference injected
// into prompts so the model stays inside the product range we actually sell.
const CatalogReference = `{
  "inventory_posting_groups": {
    "CAT01": "Spare Parts",
    "CAT02": "Miscellaneous Store",
    "CAT04": "Pumps",
    "CAT08": "Solar Equipment",
    "CAT10": "Pool Equipment",
    "CAT11": "Borehole Equipment",
    "CAT12": "Water Treatment",
    "CAT15": "Waste Water Systems",
    "CAT16": "Irrigation Systems",
    "CAT18": "Chemical Products",
    "CAT19": "Digital Engineering Solutions",
    "CAT39": "Non-Stock Items",
    "CAT40": "Finished Goods",
    "CAT51": "Transport Equipment"
  },
  "product_categories": {
    "pool": {
      "fittings": ["Valves", "Jets", "Strainers", "Thermometers"],
      "systems": ["Spas", "Heat Pumps", "Solar Heaters"]
    },
    "solar": {
      "components": ["Inverters", "Controllers", "Panels", "Batteries"],
      "systems": ["Grid-Tie", "Hybrid", "Pump Kits"]
    },
    "pumps": {
      "types": ["Submersible", "Centrifugal", "Diaphragm", "Axial Piston"],
      "brands": ["Dayliff", "Pedrollo", "Grundfos", "DAB"]
    },
    "irrigation": {
      "drip": ["Tapes", "Emitters", "Kits"],
      "sprinklers": ["Impact", "Rotary", "Pop-Up"],
      "controls": ["Timers", "Solenoids", "Weather Stations"]
    },
    "water_treatment": {
      "filtration": ["RO Membranes", "UV Systems", "Sediment Filters"],
      "chemical": ["Disinfection", "pH Adjusters", "Scale Inhibitors"]
    }
  },
  "brands": [
    "Dayliff", "Pedrollo", "Grundfos", "Hunter", "Lorentz",
    "Growatt", "Schneider", "DAB", "Davey", "KSB",
    "Victron", "JA Solar", "Must", "Deye", "BYD"
  ],
  "special_tags": [
    "Eshop_Available", "Heavy_Duty", "Corrosion_Resistant",
    "High_Pressure", "Food_Grade", "Potable_Water"
  ]
}`
