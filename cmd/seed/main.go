package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	admindomain "github.com/solvia-mx/solvia-services/api/internal/admin/domain"
	mongodoc "github.com/solvia-mx/solvia-services/api/internal/infrastructure/mongo"
	publicapp "github.com/solvia-mx/solvia-services/api/internal/public/application"
	publicdomain "github.com/solvia-mx/solvia-services/api/internal/public/domain"
)

type seedOptions struct {
	diagnosticCount int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	diagnostics    string
	priceItems     string
	legalTemplates string
}

func main() {
	_ = godotenv.Load()

	opts := seedOptions{}
	flag.IntVar(&opts.diagnosticCount, "diagnostics", 5, "number of sample diagnostics to insert")
	flag.BoolVar(&opts.dropCollections, "drop", false, "drop target collections before seeding")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed for sample data")
	flag.Parse()

	logger := log.New(os.Stdout, "[solvia-seed] ", log.LstdFlags)

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	database := envOrDefault("MONGO_DB", "solvia")
	cols := collections{
		diagnostics:    envOrDefault("DIAGNOSTIC_COLLECTION", "diagnostics"),
		priceItems:     envOrDefault("PRICE_ITEM_COLLECTION", "price_items"),
		legalTemplates: envOrDefault("LEGAL_TEMPLATE_COLLECTION", "legal_templates"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatalf("no se pudo conectar a MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("error al desconectar MongoDB: %v", err)
		}
	}()

	db := client.Database(database)

	if opts.dropCollections {
		for _, name := range []string{cols.diagnostics, cols.priceItems, cols.legalTemplates} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				logger.Fatalf("no se pudo limpiar la colección %s: %v", name, err)
			}
		}
		logger.Printf("colecciones limpiadas: %s, %s, %s", cols.diagnostics, cols.priceItems, cols.legalTemplates)
	}

	if err := seedPriceItems(ctx, db, cols.priceItems); err != nil {
		logger.Fatalf("no se pudo sembrar el catálogo de precios: %v", err)
	}
	if err := seedLegalTemplates(ctx, db, cols.legalTemplates); err != nil {
		logger.Fatalf("no se pudieron sembrar las plantillas legales: %v", err)
	}
	if err := seedDiagnostics(ctx, db, cols.diagnostics, opts); err != nil {
		logger.Fatalf("no se pudieron sembrar los diagnósticos: %v", err)
	}

	logger.Printf("semilla completada: %d diagnósticos, catálogo y plantillas listos", opts.diagnosticCount)
}

func seedPriceItems(ctx context.Context, db *mongo.Database, collection string) error {
	repo := mongodoc.NewPriceItemRepository(db, collection)

	items := []admindomain.PriceItem{
		{
			Key:         "implementacion-base",
			Name:        "Implementación del sistema",
			Description: "Configuración inicial, carga de catálogos y puesta en marcha.",
			Category:    "implementacion",
			UnitPrice:   admindomain.Money(2500000),
			Currency:    "MXN",
			Active:      true,
		},
		{
			Key:         "licencia-mensual",
			Name:        "Licencia mensual",
			Description: "Acceso al sistema para una sucursal.",
			Category:    "licencia",
			UnitPrice:   admindomain.Money(150000),
			Currency:    "MXN",
			Active:      true,
		},
		{
			Key:         "sucursal-adicional",
			Name:        "Sucursal adicional",
			Description: "Licencia mensual para cada sucursal extra.",
			Category:    "licencia",
			UnitPrice:   admindomain.Money(80000),
			Currency:    "MXN",
			Active:      true,
		},
		{
			Key:         "capacitacion",
			Name:        "Capacitación presencial",
			Description: "Sesión de capacitación para el equipo del cliente.",
			Category:    "servicios",
			UnitPrice:   admindomain.Money(500000),
			Currency:    "MXN",
			Active:      true,
		},
		{
			Key:         "sitio-web",
			Name:        "Sitio web profesional",
			Description: "Sitio con catálogo y contacto directo a WhatsApp.",
			Category:    "web",
			UnitPrice:   admindomain.Money(1800000),
			Currency:    "MXN",
			Active:      true,
		},
	}

	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedLegalTemplates(ctx context.Context, db *mongo.Database, collection string) error {
	repo := mongodoc.NewLegalTemplateRepository(db, collection)

	templates := []admindomain.LegalTemplate{
		{
			Key:   "condiciones-generales",
			Title: "Condiciones generales de venta",
			Body: strings.Join([]string{
				"La presente cotización {{folio}} se emite a nombre de {{cliente}} el {{fecha}}.",
				"El monto total de {{total}} incluye IVA y tiene una vigencia de 30 días naturales.",
				"El 50% del total se liquida al aceptar la propuesta y el resto contra entrega.",
			}, " "),
		},
		{
			Key:   "garantia-soporte",
			Title: "Garantía y soporte",
			Body: strings.Join([]string{
				"{{cliente}}: todo sistema entregado bajo el folio {{folio}} cuenta con 90 días de garantía",
				"sobre defectos de funcionamiento y soporte por correo en horario hábil.",
			}, " "),
		},
	}

	for i := range templates {
		if err := repo.Create(ctx, &templates[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedDiagnostics(ctx context.Context, db *mongo.Database, collection string, opts seedOptions) error {
	repo := mongodoc.NewDiagnosticRepository(db, collection)
	commands := publicapp.NewDiagnosticCommandService(repo)
	rng := rand.New(rand.NewSource(opts.randomSeed))

	businessTypes := []publicdomain.BusinessType{
		publicdomain.BusinessRestaurant,
		publicdomain.BusinessFieldService,
		publicdomain.BusinessFactory,
		publicdomain.BusinessOther,
	}
	maturities := []publicdomain.DigitalMaturity{
		publicdomain.MaturityNone,
		publicdomain.MaturityBasic,
		publicdomain.MaturityFunctional,
		publicdomain.MaturityAdvanced,
	}
	sizes := []publicdomain.CompanySize{
		publicdomain.SizeMicro,
		publicdomain.SizeSmall,
		publicdomain.SizeMedium,
		publicdomain.SizeLarge,
	}
	goals := []publicdomain.Goal{
		publicdomain.GoalOrganize,
		publicdomain.GoalSellMore,
		publicdomain.GoalAutomate,
		publicdomain.GoalOnlinePresence,
	}
	needs := []publicdomain.AdditionalNeed{
		publicdomain.NeedInventory,
		publicdomain.NeedBranches,
		publicdomain.NeedStaff,
		publicdomain.NeedOnlineCatalog,
	}
	names := []string{"Laura Cantú", "Miguel Ríos", "Ana Sofía Paredes", "Jorge Medina", "Carmen Olvera"}

	for i := 0; i < opts.diagnosticCount; i++ {
		answers := publicdomain.Answers{
			BusinessType:    businessTypes[rng.Intn(len(businessTypes))],
			DigitalMaturity: maturities[rng.Intn(len(maturities))],
			CompanySize:     sizes[rng.Intn(len(sizes))],
		}
		for _, goal := range goals {
			if rng.Intn(2) == 0 {
				answers.Goals = append(answers.Goals, goal)
			}
		}
		for _, need := range needs {
			if rng.Intn(3) == 0 {
				answers.AdditionalNeeds = append(answers.AdditionalNeeds, need)
			}
		}

		name := names[rng.Intn(len(names))]
		cmd := publicapp.SubmitDiagnosticCommand{
			ContactName:  name,
			ContactEmail: sampleEmail(name),
			Answers:      answers,
		}
		if _, err := commands.Submit(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func sampleEmail(name string) string {
	slug := strings.ToLower(strings.Fields(name)[0])
	replacer := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")
	return replacer.Replace(slug) + "@ejemplo.mx"
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
