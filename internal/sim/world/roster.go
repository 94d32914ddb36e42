package world

// Compiled-in name banks. Worlds draw from these by index, so constructing
// the same config twice yields byte-identical rosters. Global uniqueness of
// employee names is still re-validated in New.

var businessPrefixes = []string{
	"Apex", "Harbor", "Summit", "Cedar", "Ironwood", "Bluebird",
	"Granite", "Lantern", "Meridian", "Orchard", "Pinnacle", "Quarry",
}

var businessSuffixes = []string{
	"Consulting", "Analytics", "Logistics", "Studio", "Labs", "Partners",
	"Press", "Insurance", "Designs", "Holdings", "Supply", "Legal",
}

var buildingWords = []string{
	"Falcon", "Heron", "Osprey", "Kestrel", "Magpie", "Swift",
	"Plover", "Curlew", "Gannet", "Petrel", "Avocet", "Dunlin",
}

var buildingKinds = []string{"Tower", "House", "Court", "Works"}

var firstNames = []string{
	"Ada", "Bram", "Carmen", "Dmitri", "Elena", "Farid",
	"Greta", "Hiro", "Imani", "Jonas", "Keiko", "Lars",
	"Mireille", "Nadia", "Otto", "Priya", "Quentin", "Rosa",
	"Samir", "Tove", "Umar", "Vera", "Wendell", "Yusuf",
}

var lastNames = []string{
	"Almeida", "Berg", "Castellano", "Dubois", "Eriksen", "Fontaine",
	"Guerrero", "Hashimoto", "Ivanova", "Jansen", "Kowalski", "Lindqvist",
	"Moreau", "Nakamura", "Okafor", "Petrov", "Quist", "Rahman",
	"Sorensen", "Tanaka", "Ueda", "Varga", "Whitfield", "Zhou",
}

var employeeRoles = []string{
	"receptionist", "accountant", "engineer", "designer",
	"analyst", "manager", "paralegal", "archivist",
}

func businessName(i int) string {
	return businessPrefixes[i%len(businessPrefixes)] + " " +
		businessSuffixes[(i/len(businessPrefixes))%len(businessSuffixes)]
}

func buildingName(i int) string {
	return buildingWords[i%len(buildingWords)] + " " +
		buildingKinds[(i/len(buildingWords))%len(buildingKinds)]
}

func employeeName(i int) string {
	return firstNames[i%len(firstNames)] + " " +
		lastNames[(i/len(firstNames))%len(lastNames)]
}

func employeeRole(i int) string {
	return employeeRoles[i%len(employeeRoles)]
}

// rosterCapacity bounds how many globally unique employee names the banks
// can yield before indices wrap.
func rosterCapacity() int {
	return len(firstNames) * len(lastNames)
}
