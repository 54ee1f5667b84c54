package realtime

import (
	"reflect"
	"time"

	"gorm.io/gorm"
)

// ChangefeedHook es un plugin de GORM que captura operaciones de escritura
// sobre las tablas observadas y las publica en el Hub.
type ChangefeedHook struct {
	Hub    *Hub
	Tables map[string]bool
}

// NewChangefeedHook observa las relaciones de mensajes y solicitudes de
// contacto.
func NewChangefeedHook(hub *Hub) *ChangefeedHook {
	return &ChangefeedHook{
		Hub: hub,
		Tables: map[string]bool{
			"messages":         true,
			"contact_requests": true,
		},
	}
}

// Name retorna el nombre del plugin
func (h *ChangefeedHook) Name() string {
	return "ChangefeedHook"
}

// Initialize inicializa el plugin y registra los callbacks
func (h *ChangefeedHook) Initialize(db *gorm.DB) error {
	// Callback DESPUÉS de INSERT
	if err := db.Callback().Create().After("gorm:create").Register("changefeed:after_create", h.afterCreate); err != nil {
		return err
	}

	// Callback DESPUÉS de UPDATE
	return db.Callback().Update().After("gorm:update").Register("changefeed:after_update", h.afterUpdate)
}

// afterCreate se ejecuta después de cada INSERT
func (h *ChangefeedHook) afterCreate(db *gorm.DB) {
	statement := db.Statement
	if db.Error != nil || statement == nil || statement.Schema == nil {
		return
	}

	tableName := statement.Schema.Table
	if !h.Tables[tableName] {
		return
	}

	// Extraer todos los campos de la fila insertada
	row := make(map[string]interface{})
	for _, field := range statement.Schema.Fields {
		if !field.Readable || field.DBName == "" {
			continue
		}
		value, isZero := field.ValueOf(statement.Context, statement.ReflectValue)
		if !isZero {
			if clean := sanitizeValue(value); clean != nil {
				row[field.DBName] = clean
			}
		}
	}

	event := Event{
		Operation: OpInsert,
		Table:     tableName,
		RecordID:  h.recordID(db),
		Row:       row,
		Timestamp: time.Now(),
	}

	// Publicar de forma asíncrona
	go h.Hub.Publish(event)
}

// afterUpdate se ejecuta después de cada UPDATE
func (h *ChangefeedHook) afterUpdate(db *gorm.DB) {
	statement := db.Statement
	if db.Error != nil || statement == nil || statement.Schema == nil {
		return
	}

	tableName := statement.Schema.Table
	if !h.Tables[tableName] {
		return
	}

	row := make(map[string]interface{})

	// Con Updates()/Update() sobre un map los campos cambiados están en Dest;
	// con Save() se extraen todos los campos del struct
	if destMap, ok := statement.Dest.(map[string]interface{}); ok {
		for k, v := range destMap {
			if clean := sanitizeValue(v); clean != nil {
				row[k] = clean
			}
		}
	} else {
		for _, field := range statement.Schema.Fields {
			if !field.Readable || field.DBName == "" || field.DBName == "id" {
				continue
			}
			value, _ := field.ValueOf(statement.Context, statement.ReflectValue)
			if clean := sanitizeValue(value); clean != nil {
				row[field.DBName] = clean
			}
		}
	}

	row["updated_at"] = time.Now().Format(time.RFC3339)

	event := Event{
		Operation: OpUpdate,
		Table:     tableName,
		RecordID:  h.recordID(db),
		Row:       row,
		Timestamp: time.Now(),
	}

	go h.Hub.Publish(event)
}

// recordID extrae la clave primaria de la fila afectada; 0 en
// actualizaciones masivas sin fila concreta.
func (h *ChangefeedHook) recordID(db *gorm.DB) uint {
	idField := db.Statement.Schema.PrioritizedPrimaryField
	if idField == nil {
		return 0
	}

	value, _ := idField.ValueOf(db.Statement.Context, db.Statement.ReflectValue)
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}

// sanitizeValue convierte valores de columna a tipos serializables en JSON
func sanitizeValue(value interface{}) interface{} {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case []string:
		return v
	default:
		// Tipos con subyacente escalar (p. ej. los estados declarados como
		// string tipado); cualquier otro tipo se omite del sobre
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.String:
			return rv.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return rv.Uint()
		case reflect.Bool:
			return rv.Bool()
		}
		return nil
	}
}
