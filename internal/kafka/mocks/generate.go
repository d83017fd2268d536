package mocks

//go:generate mockgen -source=../consumer.go -destination=mock_consumer.go -package=mocks
//go:generate mockgen -source=../publisher.go -destination=mock_publisher.go -package=mocks
