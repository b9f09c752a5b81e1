package tuning

const MB = 1024 * 1024

type Unit int

const (
	Bytes Unit = iota
	Count
)

// TunableSet maps a mysqld option name to its value. Byte-valued options hold
// byte counts.
type TunableSet map[string]uint64

type Tunable struct {
	Name           string
	Unit           Unit
	Floor          uint64
	Ceiling        uint64
	ConsumesMemory bool

	derive func(budget float64, resolve func(name string) uint64) float64
}

// Tunables lists every option the calculator fills in. Options that derive from
// another option come after it.
var Tunables = []Tunable{
	{Name: "innodb_buffer_pool_size", Unit: Bytes, Floor: 32 * MB, Ceiling: 256 * 1024 * MB, ConsumesMemory: true, derive: shareOfBudget(0.70)},
	{Name: "key_buffer_size", Unit: Bytes, Floor: 8 * MB, Ceiling: 512 * MB, ConsumesMemory: true, derive: shareOfBudget(0.04)},
	{Name: "innodb_log_buffer_size", Unit: Bytes, Floor: 8 * MB, Ceiling: 256 * MB, ConsumesMemory: true, derive: shareOfBudget(0.01)},
	{Name: "tmp_table_size", Unit: Bytes, Floor: 16 * MB, Ceiling: 512 * MB, ConsumesMemory: true, derive: shareOfBudget(0.02)},
	{Name: "max_heap_table_size", Unit: Bytes, Floor: 16 * MB, Ceiling: 512 * MB, ConsumesMemory: true, derive: shareOfBudget(0.02)},
	{Name: "sort_buffer_size", Unit: Bytes, Floor: 1 * MB, Ceiling: 8 * MB, ConsumesMemory: true, derive: shareOfBudget(0.002)},
	{Name: "read_buffer_size", Unit: Bytes, Floor: 1 * MB, Ceiling: 8 * MB, ConsumesMemory: true, derive: shareOfBudget(0.002)},
	{Name: "read_rnd_buffer_size", Unit: Bytes, Floor: 1 * MB, Ceiling: 16 * MB, ConsumesMemory: true, derive: shareOfBudget(0.002)},
	{Name: "join_buffer_size", Unit: Bytes, Floor: 1 * MB, Ceiling: 16 * MB, ConsumesMemory: true, derive: shareOfBudget(0.002)},
	{Name: "innodb_log_file_size", Unit: Bytes, Floor: 48 * MB, Ceiling: 2048 * MB, derive: fractionOf("innodb_buffer_pool_size", 0.25)},
	{Name: "max_connections", Unit: Count, Floor: 50, Ceiling: 2000, derive: perMegabyteOfBudget(1.0 / 8)},
	{Name: "table_open_cache", Unit: Count, Floor: 400, Ceiling: 4096, derive: fractionOf("max_connections", 4)},
	{Name: "thread_cache_size", Unit: Count, Floor: 8, Ceiling: 100, derive: fractionOf("max_connections", 0.1)},
}

func Lookup(name string) (Tunable, bool) {
	for _, t := range Tunables {
		if t.Name == name {
			return t, true
		}
	}
	return Tunable{}, false
}

func shareOfBudget(weight float64) func(float64, func(string) uint64) float64 {
	return func(budget float64, _ func(string) uint64) float64 {
		return budget * weight
	}
}

func perMegabyteOfBudget(ratio float64) func(float64, func(string) uint64) float64 {
	return func(budget float64, _ func(string) uint64) float64 {
		return budget / MB * ratio
	}
}

func fractionOf(name string, fraction float64) func(float64, func(string) uint64) float64 {
	return func(_ float64, resolve func(string) uint64) float64 {
		return float64(resolve(name)) * fraction
	}
}

func (t Tunable) value(budget float64, resolve func(string) uint64) uint64 {
	raw := t.derive(budget, resolve)
	if raw < 0 {
		raw = 0
	}

	v := uint64(raw)
	if t.Unit == Bytes {
		v = v / MB * MB
	}

	return min(max(v, t.Floor), t.Ceiling)
}
