package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/goodcause/donationbackend/lib/mypublisher"
	"github.com/goodcause/donationbackend/lib/mypubsub"
	"github.com/goodcause/donationbackend/lib/myqueue"
	"github.com/goodcause/donationbackend/lib/mystore"
	"github.com/goodcause/donationbackend/lib/mytime"
	"github.com/goodcause/donationbackend/lib/myuuid"
	"github.com/goodcause/donationbackend/services/donation"
	"github.com/goodcause/donationbackend/services/donationapi"
	"github.com/goodcause/donationbackend/services/donationwizard"
	"github.com/goodcause/donationbackend/services/gatewayepayco"
	"github.com/goodcause/donationbackend/services/paymentstatus"
)

func main() {
	c := context.Background()

	// Local development overrides
	_ = godotenv.Load()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	router := mux.NewRouter()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queuer, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queuer, nower, uuider)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	gatewayCfg := gatewayepayco.Config{
		PublicKey: os.Getenv("EPAYCO_PUBLIC_KEY"),
		Test:      os.Getenv("EPAYCO_TEST") == "true",
	}
	gateway := gatewayepayco.NewGateway(gatewayCfg)
	checkout := gatewayepayco.NewClient(gatewayCfg, gateway, gatewayepayco.NewResourceRegistry(), uuider)

	donationStore, donationStoreCleanup, err := mystore.New[donation.Donation](c)
	if err != nil {
		log.Fatalf("Error creating donation store: %s", err)
	}
	defer donationStoreCleanup()

	donationService := donation.NewWebService(donation.Config{
		PublicKey: gatewayCfg.PublicKey,
		Test:      gatewayCfg.Test,
	}, nower, uuider, donationStore, publisher)
	err = donationService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering donation service: %s", err)
	}

	draftStore, draftStoreCleanup, err := mystore.New[donationapi.DonationDraft](c)
	if err != nil {
		log.Fatalf("Error creating draft store: %s", err)
	}
	defer draftStoreCleanup()

	wizardService := donationwizard.NewWebService(nower, uuider, draftStore, donationService.Donator(), checkout)
	err = wizardService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering wizard service: %s", err)
	}

	statusService := paymentstatus.NewWebService(paymentstatus.NewGatewayValidator(gateway), donationService.Donator())
	err = statusService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering payment status service: %s", err)
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s/donate)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
