package avro

// OrderEventSchema is the Avro schema for order lifecycle events on the
// Kafka topic. Fields are non-nullable simple types so JSON-roundtrip
// encoding needs no union wrappers; occurred_at is an RFC 3339 string.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "com.demodelivery.order",
	"fields": [
		{"name": "type", "type": "string"},
		{"name": "order_id", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "table_number", "type": "string"},
		{"name": "total_price", "type": "double"},
		{"name": "item_count", "type": "long"},
		{"name": "occurred_at", "type": "string"}
	]
}`
