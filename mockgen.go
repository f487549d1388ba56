//go:build gomock || generate

package knp

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package knp -self_package github.com/ShiftyTR/KcpNatProxy -destination mock_send_conn_test.go github.com/ShiftyTR/KcpNatProxy SendConn"
type SendConn = sendConn

//go:generate sh -c "go run go.uber.org/mock/mockgen -package knp -self_package github.com/ShiftyTR/KcpNatProxy -destination mock_negotiator_test.go github.com/ShiftyTR/KcpNatProxy Negotiator"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package knp -self_package github.com/ShiftyTR/KcpNatProxy -destination mock_keep_alive_handler_test.go github.com/ShiftyTR/KcpNatProxy KeepAliveHandler"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package knp -self_package github.com/ShiftyTR/KcpNatProxy -destination mock_application_registration_test.go github.com/ShiftyTR/KcpNatProxy ApplicationRegistration"
//go:generate sh -c "go run go.uber.org/mock/mockgen -package knp -self_package github.com/ShiftyTR/KcpNatProxy -destination mock_connection_callback_test.go github.com/ShiftyTR/KcpNatProxy ConnectionCallback"
