// Comando initdb: crea o verifica el esquema de la base de asistencia sin
// levantar el servidor.
package main

import (
	"flag"
	"log"

	"github.com/LuisMD0/ProyectoAsist/internal/database"
)

func main() {
	dbPath := flag.String("db", "./FIME_v2.db", "ruta del archivo SQLite")
	flag.Parse()

	db, err := database.InitDB(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	log.Println("Tabla asistencia creada o verificada exitosamente.")
}
