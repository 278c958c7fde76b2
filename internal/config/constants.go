package config

// DefaultAdmins is the fallback admin allow-list used when ADMIN_USERS
// is not set. Admins bypass the free lootbox cooldown.
var DefaultAdmins = []string{"vechkabaz", "treggattv"}
