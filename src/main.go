package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"Backend-AssocHub-012/src/controllers"
	"Backend-AssocHub-012/src/database"
	"Backend-AssocHub-012/src/jobs"
	"Backend-AssocHub-012/src/repositories"
	"Backend-AssocHub-012/src/routes"
	"Backend-AssocHub-012/src/services/activities"
	"Backend-AssocHub-012/src/services/auth"
	"Backend-AssocHub-012/src/services/authz"
	"Backend-AssocHub-012/src/services/notifier"
	"Backend-AssocHub-012/src/services/options"
	"Backend-AssocHub-012/src/services/quota"
	"Backend-AssocHub-012/src/services/updateproposals"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitRedis()
	database.InitAsynq()

	activityRepo := repositories.NewActivityRepo(database.ActivityCollection)
	updateRepo := repositories.NewUpdateProposalRepo(database.UpdateProposalCollection)
	optionProposalRepo := repositories.NewOptionProposalRepo(database.OptionProposalCollection, database.CalendarOptionCollection)
	calendarOptionRepo := repositories.NewCalendarOptionRepo(database.CalendarOptionCollection)
	periodRepo := repositories.NewPeriodRepo(database.CreationPeriodCollection, database.MaxActivitiesCollection)
	organRepo := repositories.NewOrganRepo(database.OrganCollection, database.CompanyCollection)
	userRepo := repositories.NewUserRepo(database.UserCollection)
	tx := repositories.NewTx(database.MongoClient())

	oracle := authz.RoleOracle{}

	var mail *notifier.Service
	if sender, err := notifier.NewSMTPSenderFromEnv(); err != nil {
		log.Println("⚠️ SMTP not configured, board notifications disabled:", err)
	} else {
		mail = notifier.NewService(sender)
	}

	activitySvc := activities.NewService(activityRepo, oracle)
	updateSvc := updateproposals.NewService(oracle, activityRepo, updateRepo, organRepo, organRepo, mail, tx)
	quotaSvc := quota.NewService(periodRepo, optionProposalRepo, database.RedisClient)
	optionSvc := options.NewService(oracle, optionProposalRepo, calendarOptionRepo, quotaSvc, periodRepo, tx)
	authSvc := auth.NewService(userRepo)

	controllers.Init(controllers.Deps{
		Activities: activitySvc,
		Updates:    updateSvc,
		Options:    optionSvc,
		Quota:      quotaSvc,
		Auth:       authSvc,
		Users:      userRepo,
	})

	if database.RedisURI != "" {
		go jobs.StartWorker(database.RedisURI, jobs.NewOverdueSweepHandler(optionSvc, mail))
		go jobs.StartScheduler(database.RedisURI)
	}

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
