//go:generate mockgen -source=../catalog_store.go        -destination=./mock_catalog_store.go        -package=mocks
//go:generate mockgen -source=../catalog_cache.go        -destination=./mock_catalog_cache.go        -package=mocks
//go:generate mockgen -source=../catalog_read_service.go -destination=./mock_catalog_read_service.go -package=mocks
//go:generate mockgen -source=../admin_repository.go     -destination=./mock_admin_repository.go     -package=mocks
//go:generate mockgen -source=../admin_service.go        -destination=./mock_admin_service.go        -package=mocks
//go:generate mockgen -source=../image_storage.go        -destination=./mock_image_storage.go        -package=mocks
//go:generate mockgen -source=../event_publisher.go      -destination=./mock_event_publisher.go      -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../message_consumer.go     -destination=./mock_message_consumer.go     -package=mocks

package mocks
