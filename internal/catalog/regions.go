// Package catalog holds the fixed lookup tables the application validates
// against: the state/region catalog used during onboarding and the
// per-complaint-type question sets rendered at submission time.
package catalog

import "sort"

// StateRegions maps every supported state or union territory to its fixed
// list of sub-regions. A profile's region must be one of the entries for its
// state; authority visibility is scoped by these region names.
var StateRegions = map[string][]string{
	"Andhra Pradesh":    {"Visakhapatnam", "Vijayawada", "Guntur", "Tirupati"},
	"Arunachal Pradesh": {"Itanagar", "Tawang", "Ziro", "Pasighat"},
	"Assam":             {"Guwahati", "Dibrugarh", "Silchar", "Tezpur"},
	"Bihar":             {"Patna", "Gaya", "Muzaffarpur", "Bhagalpur"},
	"Chhattisgarh":      {"Raipur", "Bilaspur", "Durg", "Korba"},
	"Goa":               {"Panaji", "Margao", "Vasco da Gama", "Mapusa"},
	"Gujarat":           {"Ahmedabad", "Surat", "Vadodara", "Rajkot"},
	"Haryana":           {"Gurgaon", "Faridabad", "Panipat", "Ambala"},
	"Himachal Pradesh":  {"Shimla", "Dharamshala", "Kullu", "Mandi"},
	"Jharkhand":         {"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro"},
	"Karnataka":         {"Bengaluru", "Mysuru", "Hubli", "Mangaluru"},
	"Kerala":            {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur"},
	"Madhya Pradesh":    {"Bhopal", "Indore", "Gwalior", "Jabalpur"},
	"Maharashtra":       {"Mumbai", "Pune", "Nagpur", "Nashik"},
	"Manipur":           {"Imphal", "Thoubal", "Churachandpur", "Bishnupur"},
	"Meghalaya":         {"Shillong", "Tura", "Jowai", "Nongpoh"},
	"Mizoram":           {"Aizawl", "Lunglei", "Champhai", "Serchhip"},
	"Nagaland":          {"Kohima", "Dimapur", "Mokokchung", "Tuensang"},
	"Odisha":            {"Bhubaneswar", "Cuttack", "Rourkela", "Puri"},
	"Punjab":            {"Amritsar", "Ludhiana", "Jalandhar", "Patiala"},
	"Rajasthan":         {"Jaipur", "Jodhpur", "Udaipur", "Kota"},
	"Sikkim":            {"Gangtok", "Namchi", "Geyzing", "Mangan"},
	"Tamil Nadu":        {"Chennai", "Coimbatore", "Madurai", "Salem"},
	"Telangana":         {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar"},
	"Tripura":           {"Agartala", "Udaipur", "Dharmanagar", "Kailashahar"},
	"Uttar Pradesh":     {"Lucknow", "Kanpur", "Varanasi", "Agra"},
	"Uttarakhand":       {"Dehradun", "Haridwar", "Nainital", "Haldwani"},
	"West Bengal":       {"Kolkata", "Howrah", "Asansol", "Siliguri"},

	// Union territories
	"Andaman and Nicobar Islands":                {"Port Blair", "Diglipur", "Mayabunder", "Hut Bay"},
	"Chandigarh":                                 {"Sector 17", "Manimajra", "Daria", "Industrial Area"},
	"Dadra and Nagar Haveli and Daman and Diu":   {"Silvassa", "Daman", "Diu", "Amli"},
	"Delhi":                                      {"New Delhi", "Dwarka", "Rohini", "Karol Bagh"},
	"Jammu and Kashmir":                          {"Srinagar", "Jammu", "Anantnag", "Baramulla"},
	"Ladakh":                                     {"Leh", "Kargil", "Diskit", "Nubra"},
	"Lakshadweep":                                {"Kavaratti", "Agatti", "Minicoy", "Amini"},
	"Puducherry":                                 {"Puducherry", "Karaikal", "Mahe", "Yanam"},
}

// States returns the catalog's state names in sorted order.
func States() []string {
	names := make([]string, 0, len(StateRegions))
	for name := range StateRegions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegionsForState returns the sub-regions of a state, or nil if the state is
// not in the catalog.
func RegionsForState(state string) []string {
	return StateRegions[state]
}

// ValidRegion reports whether region is one of state's catalog entries.
// Matching is exact and case-sensitive.
func ValidRegion(state, region string) bool {
	for _, r := range StateRegions[state] {
		if r == region {
			return true
		}
	}
	return false
}
