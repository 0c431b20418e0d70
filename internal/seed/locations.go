package seed

// Locations 结账表单使用的国家与城市数据
func Locations() map[string][]string {
	return map[string][]string{
		"Colombia": {
			"Bogotá", "Medellín", "Cali", "Villavicencio", "Bucaramanga", "Cartagena",
			"Fusagasugá", "Envigado", "Manizales", "Pereira", "Santa Marta", "Valledupar",
			"Sabaneta", "Itagui", "Soacha", "Rionegro", "Acacías", "Duitama", "Chía",
			"Cajicá", "Granada", "Cúcuta",
		},
		"México": {
			"CDMX", "Guadalajara", "Monterrey", "Tijuana", "Puerto Vallarta", "Cancun",
			"Puebla-Tlaxcala", "León", "Mérida", "Querétaro", "Chihuahua",
		},
		"España": {
			"Madrid", "Barcelona", "Andalucía", "Sevilla", "Zaragoza", "Málaga",
			"Bilbao", "Palma", "Murcia", "Valencia",
		},
		"Argentina": {
			"Buenos Aires", "Córdoba", "Rosario", "Mendoza", "La Plata",
			"San Miguel de Tucumán", "Mar del Plata", "Salta", "Santa Fé",
		},
		"República Dominicana": {
			"Punta Cana", "La Romana", "Puerto Plata", "Santo Domingo",
		},
		"Puerto Rico": {
			"San Juan", "Bayamón", "Carolina", "Ponce", "Caguas", "Guaynabo",
			"Arecibo", "Mayagüez", "Trujillo Alto",
		},
	}
}
