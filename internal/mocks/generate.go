package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/match --output domain/match --outpkg matchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../domain/nextmatch --output domain/nextmatch --outpkg nextmatchmock --filename store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Log --dir ../domain/teamstats --output domain/teamstats --outpkg teamstatsmock --filename log_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Authorizer --dir ../usecase --output usecase --outpkg usecasemock --filename authorizer_mock.go
