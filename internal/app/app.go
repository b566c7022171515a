package app

import (
	campaign_post "ojitos/internal/handlers/rest/campaign_post"
	campaign_send_post "ojitos/internal/handlers/rest/campaign_send_post"
	campaigns_get "ojitos/internal/handlers/rest/campaigns_get"
	customer_get "ojitos/internal/handlers/rest/customer_get"
	customer_indicator_get "ojitos/internal/handlers/rest/customer_indicator_get"
	customer_post "ojitos/internal/handlers/rest/customer_post"
	customer_put "ojitos/internal/handlers/rest/customer_put"
	customers_get "ojitos/internal/handlers/rest/customers_get"
	debts_get "ojitos/internal/handlers/rest/debts_get"
	dispatch_get "ojitos/internal/handlers/rest/dispatch_get"
	dispatch_post "ojitos/internal/handlers/rest/dispatch_post"
	dispatches_eligible_get "ojitos/internal/handlers/rest/dispatches_eligible_get"
	dispatches_get "ojitos/internal/handlers/rest/dispatches_get"
	message_post "ojitos/internal/handlers/rest/message_post"
	package_delete "ojitos/internal/handlers/rest/package_delete"
	package_deliver_post "ojitos/internal/handlers/rest/package_deliver_post"
	package_dispatches_get "ojitos/internal/handlers/rest/package_dispatches_get"
	package_get "ojitos/internal/handlers/rest/package_get"
	package_label_post "ojitos/internal/handlers/rest/package_label_post"
	package_post "ojitos/internal/handlers/rest/package_post"
	package_restore_post "ojitos/internal/handlers/rest/package_restore_post"
	package_status_put "ojitos/internal/handlers/rest/package_status_put"
	packages_deleted_get "ojitos/internal/handlers/rest/packages_deleted_get"
	packages_get "ojitos/internal/handlers/rest/packages_get"
	payment_post "ojitos/internal/handlers/rest/payment_post"
	trip_post "ojitos/internal/handlers/rest/trip_post"
	trips_get "ojitos/internal/handlers/rest/trips_get"
	webhook_whatsapp "ojitos/internal/handlers/rest/webhook_whatsapp"
	"ojitos/internal/service/messaging"
	"ojitos/internal/service/scanner"
	"ojitos/pkg/background"
)

type Application struct {
	ServiceCustomer   ServiceCustomer
	ServiceTrip       ServiceTrip
	ServiceParcel     ServiceParcel
	ServiceLabel      ServiceLabel
	ServicePayment    ServicePayment
	ServiceDispatch   ServiceDispatch
	ServiceMessaging  ServiceMessaging
	ServiceCampaign   ServiceCampaign
	ScannerRegistry   *scanner.Registry
	BackgroundWorkers *background.Worker
}

type ServiceCustomer interface {
	customer_post.Service
	customer_put.Service
	customers_get.Service
	customer_get.Service
	customer_indicator_get.Service
}

type ServiceTrip interface {
	trip_post.Service
	trips_get.Service
}

type ServiceParcel interface {
	package_post.Service
	packages_get.Service
	packages_deleted_get.Service
	package_get.Service
	package_status_put.Service
	package_delete.Service
	package_restore_post.Service
}

type ServiceLabel interface {
	package_label_post.Service
}

type ServicePayment interface {
	package_deliver_post.Service
	payment_post.Service
	debts_get.Service
}

type ServiceDispatch interface {
	package_dispatches_get.Service
	dispatches_eligible_get.Service
	dispatch_post.Service
	dispatch_get.Service
	dispatches_get.Service
}

type ServiceMessaging interface {
	message_post.Service
	webhook_whatsapp.Service
}

type ServiceCampaign interface {
	campaign_post.Service
	campaigns_get.Service
	campaign_send_post.Service
}

type KafkaWorkerApp struct {
	MessagingService *messaging.Messaging
}
